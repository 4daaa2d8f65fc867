package filter

import (
	"errors"
	"testing"

	"arcade-catalog/core/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMachine(s *catalog.Store, name string, fn func(m *catalog.Machine)) {
	m := s.Create(name)
	m.Category = "Maze"
	m.Manufacturer = "Namco"
	if fn != nil {
		fn(m)
	}
}

func fixtureStore() *catalog.Store {
	s := catalog.NewStore()
	newMachine(s, "pacman", nil)
	newMachine(s, "galaga", func(m *catalog.Machine) { m.Category = "Shooter" })
	newMachine(s, "z80", func(m *catalog.Machine) { m.IsDevice = catalog.BoolPtr(true) })
	newMachine(s, "neogeo", func(m *catalog.Machine) { m.IsBios = catalog.BoolPtr(true) })
	newMachine(s, "pinball", func(m *catalog.Machine) { m.IsMechanical = catalog.BoolPtr(true) })
	newMachine(s, "pacmanbl", func(m *catalog.Machine) { m.Description = "Pac-Man (Bootleg)" })
	newMachine(s, "pc_smb", func(m *catalog.Machine) { m.Description = "Super Mario Bros. (PlayChoice-10)" })
	newMachine(s, "mystery", func(m *catalog.Machine) { m.Manufacturer = "<unknown>" })
	newMachine(s, "bios2", func(m *catalog.Machine) { m.Players = "BIOS" })
	newMachine(s, "puckman", func(m *catalog.Machine) { m.CloneOf = "pacman" })
	newMachine(s, "mspacmnf", func(m *catalog.Machine) { m.RomOf = "mspacman" })
	newMachine(s, "chess", func(m *catalog.Machine) { m.Category = "Tabletop" })
	newMachine(s, "tabletopx", func(m *catalog.Machine) { m.Category = "Tabletop Extra" })
	newMachine(s, "nocat", func(m *catalog.Machine) { m.Category = "" })
	return s
}

func TestBuildPlan_EmptyStore(t *testing.T) {
	_, err := BuildPlan(catalog.NewStore(), KindAll)
	assert.True(t, errors.Is(err, catalog.ErrNoData))
}

func TestRemove_PerKind(t *testing.T) {
	tests := []struct {
		kind    Kind
		removed []string
	}{
		{KindDevice, []string{"z80"}},
		{KindBios, []string{"neogeo"}},
		{KindMechanical, []string{"pinball"}},
		{KindModified, []string{"bios2", "mystery", "pacmanbl", "pc_smb"}},
		{KindClones, []string{"mspacmnf", "puckman"}},
		{KindCategories, []string{"chess", "nocat"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			s := fixtureStore()
			before := s.Len()

			plan, err := BuildPlan(s, tt.kind)
			require.NoError(t, err)
			var keys []string
			for _, a := range plan.Actions {
				keys = append(keys, a.Key)
			}
			assert.Equal(t, tt.removed, keys)

			n, err := Remove(s, tt.kind)
			require.NoError(t, err)
			assert.Equal(t, len(tt.removed), n)
			assert.Equal(t, before-n, s.Len())

			s.Each(func(m *catalog.Machine) {
				assert.False(t, tt.kind.Match(m), "machine %s still matches", m.Name)
			})
		})
	}
}

func TestRemove_CategoryExclusionIsExactMatch(t *testing.T) {
	s := fixtureStore()
	_, err := Remove(s, KindCategories)
	require.NoError(t, err)

	_, ok := s.Get("chess")
	assert.False(t, ok)
	_, ok = s.Get("tabletopx")
	assert.True(t, ok)
}

func TestRemove_ClonesDoNotCascade(t *testing.T) {
	s := fixtureStore()
	_, err := Remove(s, KindClones)
	require.NoError(t, err)
	_, ok := s.Get("pacman")
	assert.True(t, ok)

	s = fixtureStore()
	s.Remove("pacman")
	n, err := Remove(s, KindCategories)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	_, ok = s.Get("puckman")
	assert.True(t, ok)
}

func TestBuildPlan_AllSummary(t *testing.T) {
	s := fixtureStore()
	plan, err := BuildPlan(s, KindAll)
	require.NoError(t, err)

	assert.Equal(t, 14, plan.Summary.Scanned)
	assert.Equal(t, 11, plan.Summary.Removals)
	assert.Equal(t, 2, plan.Summary.ByReason[KindClones])
	assert.Equal(t, 4, plan.Summary.ByReason[KindModified])
	assert.Equal(t, 2, plan.Summary.ByReason[KindCategories])

	var kept []string
	s.Each(func(m *catalog.Machine) {
		if !KindAll.Match(m) {
			kept = append(kept, m.Name)
		}
	})
	assert.ElementsMatch(t, []string{"pacman", "galaga", "tabletopx"}, kept)
}

func TestApplyPlan_RequiresConfirmation(t *testing.T) {
	s := fixtureStore()
	plan, err := BuildPlan(s, KindClones)
	require.NoError(t, err)

	assert.Equal(t, 0, ApplyPlan(s, plan, Options{}))
	assert.Equal(t, 0, ApplyPlan(s, plan, Options{Confirmed: true, DryRun: true}))
	assert.Equal(t, 14, s.Len())

	assert.Equal(t, 2, ApplyPlan(s, plan, Options{Confirmed: true}))
	assert.Equal(t, 12, s.Len())
}

type recordingRemover struct {
	removed []string
}

func (r *recordingRemover) Remove(name string) {
	r.removed = append(r.removed, name)
}

func TestApplyPlan_FallsBackToSingleRemoval(t *testing.T) {
	r := &recordingRemover{}
	plan := &Plan{Actions: []Action{{Key: "a"}, {Key: "b"}}}

	n := ApplyPlan(r, plan, Options{Confirmed: true})
	assert.Equal(t, 2, n)
	assert.Equal(t, []string{"a", "b"}, r.removed)
}

func TestRun_RebuildsIndices(t *testing.T) {
	cat := catalog.New()
	require.NoError(t, cat.Exclusive(func(s *catalog.Store, ix *catalog.Indices) error {
		fixtureStore().Each(func(m *catalog.Machine) { *s.Create(m.Name) = *m })
		ix.RebuildAll(s)
		assert.Equal(t, 1, ix.Get(catalog.IndexCategories).Count("Tabletop"))
		return nil
	}))

	plan, removed, err := Run(cat, Options{Confirmed: true}, KindCategories)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)
	assert.Equal(t, 2, plan.Summary.Removals)

	require.NoError(t, cat.Exclusive(func(s *catalog.Store, ix *catalog.Indices) error {
		assert.Equal(t, 0, ix.Get(catalog.IndexCategories).Count("Tabletop"))
		assert.Equal(t, 12, s.Len())
		return nil
	}))
}

func TestParseKinds(t *testing.T) {
	kinds, err := ParseKinds([]string{"Clones", " device ", ""})
	require.NoError(t, err)
	assert.Equal(t, []Kind{KindClones, KindDevice}, kinds)

	_, err = ParseKinds([]string{"genres"})
	assert.EqualError(t, err, "unknown filter: genres")
}
