package equipment

type EquipmentRequest struct {
	Name string `json:"name" binding:"required"`
	Qty  int    `json:"qty"`
	Note string `json:"note"`
}
