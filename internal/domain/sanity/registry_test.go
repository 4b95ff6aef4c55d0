package sanity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/t4sanity/t4sanity/internal/domain"
	"github.com/t4sanity/t4sanity/internal/domain/sanity"
)

type stubChecker struct {
	rule domain.Rule
}

func (s *stubChecker) Rule() domain.Rule              { return s.rule }
func (s *stubChecker) Check(*sanity.Context) []string { return nil }

func stub(id string) *stubChecker {
	return &stubChecker{rule: domain.Rule{ID: id, Name: "stub-" + id, Severity: domain.SeverityError}}
}

func TestRegistry_RegisterDuplicateFails(t *testing.T) {
	r := sanity.NewRegistry()
	require.NoError(t, r.Register(stub("STR001")))

	err := r.Register(stub("STR001"))
	require.Error(t, err)
	var dup *domain.DuplicateRuleError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "STR001", dup.ID)
}

func TestRegistry_OverrideReplaces(t *testing.T) {
	r := sanity.NewRegistry()
	require.NoError(t, r.Register(stub("STR001")))

	replacement := stub("STR001")
	r.Override(replacement)

	all := r.All()
	require.Len(t, all, 1)
	assert.Same(t, replacement, all[0].(*stubChecker))
}

func TestRegistry_AllOrdered(t *testing.T) {
	r := sanity.NewRegistry()
	for _, id := range []string{"TIV001", "FMT002", "REC001", "REF101", "STR002", "REF014", "STR001", "FMT001"} {
		require.NoError(t, r.Register(stub(id)))
	}

	var ids []string
	for _, c := range r.All() {
		ids = append(ids, c.Rule().ID)
	}
	assert.Equal(t, []string{"STR001", "STR002", "REC001", "REF014", "REF101", "FMT001", "FMT002", "TIV001"}, ids)
}

func TestRegistry_ResolveByIDAndGroup(t *testing.T) {
	r := sanity.NewRegistry()
	for _, id := range []string{"STR001", "REC001", "REC002", "FMT001"} {
		require.NoError(t, r.Register(stub(id)))
	}

	set := r.Resolve([]string{"REC", "FMT001"})
	assert.True(t, set.Excluded["REC001"])
	assert.True(t, set.Excluded["REC002"])
	assert.True(t, set.Excluded["FMT001"])
	assert.False(t, set.Excluded["STR001"])
	assert.Empty(t, set.UnknownExcludes)
}

func TestRegistry_ResolveReportsUnknownExcludes(t *testing.T) {
	r := sanity.NewRegistry()
	require.NoError(t, r.Register(stub("STR001")))

	set := r.Resolve([]string{"STR999", "XYZ"})
	assert.Equal(t, []string{"STR999", "XYZ"}, set.UnknownExcludes)
	assert.Empty(t, set.Excluded)
}

func TestBuiltin_CatalogShape(t *testing.T) {
	all := sanity.Builtin().All()
	require.Len(t, all, 57)

	counts := map[domain.Group]int{}
	for _, c := range all {
		counts[c.Rule().Group()]++
	}
	assert.Equal(t, 9, counts[domain.GroupStructure])
	assert.Equal(t, 7, counts[domain.GroupRecord])
	assert.Equal(t, 23, counts[domain.GroupReference])
	assert.Equal(t, 17, counts[domain.GroupFormat])
	assert.Equal(t, 1, counts[domain.GroupTier4])
}

func TestBuiltin_OnlyCategoryIndexRuleIsFixable(t *testing.T) {
	for _, c := range sanity.Builtin().All() {
		rule := c.Rule()
		if rule.ID == "REC007" {
			assert.True(t, rule.Fixable)
			continue
		}
		assert.False(t, rule.Fixable, "%s must not be fixable", rule.ID)
	}
}
