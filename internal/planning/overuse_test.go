package planning

import (
	"testing"

	"eventdesk/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMonthOveruseTwoProjectsShareTent(t *testing.T) {
	equipment := []domain.Equipment{{Name: "Tent", Qty: 5}}
	projects := []domain.Project{
		project("wedding", "2024-06-10", "2024-06-15", domain.UsageEntry{Name: "Tent", Qty: 3}),
		project("expo", "2024-06-10", "2024-06-15", domain.UsageEntry{Name: "Tent", Qty: 3}),
	}

	overuse := BuildMonthOveruse("2024-06", projects, equipment)

	// every day of the shared range is short, nothing else is
	require.Len(t, overuse, 6)
	entries, ok := overuse["2024-06-12"]
	require.True(t, ok)
	require.Len(t, entries, 1)

	e := entries[0]
	assert.Equal(t, "Tent", e.Equipment)
	assert.Equal(t, 6, e.Required)
	assert.Equal(t, 5, e.Available)
	assert.Equal(t, 1, e.Shortage)
	require.Len(t, e.Projects, 2)
	assert.Equal(t, 3, e.Projects[0].Qty)
	assert.Equal(t, 3, e.Projects[1].Qty)
}

func TestBuildMonthOveruseStrictComparison(t *testing.T) {
	equipment := []domain.Equipment{{Name: "Tent", Qty: 6}}
	projects := []domain.Project{
		project("wedding", "2024-06-10", "2024-06-15", domain.UsageEntry{Name: "Tent", Qty: 3}),
		project("expo", "2024-06-10", "2024-06-15", domain.UsageEntry{Name: "Tent", Qty: 3}),
	}

	// required == available is not a shortage
	overuse := BuildMonthOveruse("2024-06", projects, equipment)

	assert.Empty(t, overuse)
}

func TestBuildMonthOveruseMissingInventoryIsZeroCapacity(t *testing.T) {
	projects := []domain.Project{
		project("expo", "2024-06-10", "2024-06-10", domain.UsageEntry{Name: "Tent", Qty: 1}),
	}

	overuse := BuildMonthOveruse("2024-06", projects, nil)

	entries, ok := overuse["2024-06-10"]
	require.True(t, ok)
	require.Len(t, entries, 1)
	assert.Equal(t, 1, entries[0].Required)
	assert.Equal(t, 0, entries[0].Available)
	assert.Equal(t, 1, entries[0].Shortage)
}

func TestBuildMonthOveruseEntriesSortedByName(t *testing.T) {
	projects := []domain.Project{
		project("expo", "2024-06-10", "2024-06-10",
			domain.UsageEntry{Name: "Truss", Qty: 1},
			domain.UsageEntry{Name: "Amp", Qty: 1},
			domain.UsageEntry{Name: "Mixer", Qty: 1},
		),
	}

	overuse := BuildMonthOveruse("2024-06", projects, nil)

	entries := overuse["2024-06-10"]
	require.Len(t, entries, 3)
	assert.Equal(t, "Amp", entries[0].Equipment)
	assert.Equal(t, "Mixer", entries[1].Equipment)
	assert.Equal(t, "Truss", entries[2].Equipment)
}

func TestBuildMonthOveruseOnlyDaysInsideMonth(t *testing.T) {
	// project crosses the month boundary; only June days can appear in June
	projects := []domain.Project{
		project("tour", "2024-05-28", "2024-06-03", domain.UsageEntry{Name: "Truck", Qty: 2}),
	}

	overuse := BuildMonthOveruse("2024-06", projects, nil)

	require.Len(t, overuse, 3)
	assert.Contains(t, overuse, "2024-06-01")
	assert.Contains(t, overuse, "2024-06-03")
	assert.NotContains(t, overuse, "2024-05-31")
}

func TestBuildMonthOveruseEmptyInputs(t *testing.T) {
	assert.Empty(t, BuildMonthOveruse("2024-06", nil, nil))
	assert.Empty(t, BuildMonthOveruse("garbage", []domain.Project{
		project("expo", "2024-06-10", "2024-06-10", domain.UsageEntry{Name: "Tent", Qty: 1}),
	}, nil))
}

func TestBuildMonthOveruseIdempotent(t *testing.T) {
	equipment := []domain.Equipment{{Name: "Tent", Qty: 5}}
	projects := []domain.Project{
		project("wedding", "2024-06-10", "2024-06-15", domain.UsageEntry{Name: "Tent", Qty: 3}),
		project("expo", "2024-06-12", "2024-06-18", domain.UsageEntry{Name: "Tent", Qty: 4}),
	}

	first := BuildMonthOveruse("2024-06", projects, equipment)
	second := BuildMonthOveruse("2024-06", projects, equipment)

	assert.Equal(t, first, second)
}
