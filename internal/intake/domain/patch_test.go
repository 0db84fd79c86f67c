package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClientPatchApplyTo(t *testing.T) {
	first, email, empty := "Jane", "jane@example.com", ""
	p := ClientPatch{FirstName: &first, Email: &email, BirthDate: &empty}

	require.Equal(t, []string{FieldFirstName, FieldEmail, FieldBirthDate}, p.Keys())
	require.True(t, p.Has(FieldEmail))
	require.False(t, p.Has(FieldSSN))
	require.False(t, p.IsEmpty())

	c := Client{FirstName: "Janet", Email: "jane@example.com", BirthDate: "1990-01-01", LastName: "Smith"}
	changed := p.ApplyTo(&c)
	require.Equal(t, []string{FieldFirstName, FieldBirthDate}, changed)
	require.Equal(t, "Jane", c.FirstName)
	require.Empty(t, c.BirthDate)
	require.Equal(t, "Smith", c.LastName)

	require.Empty(t, p.ApplyTo(&c), "second application changes nothing")
}

func TestEmptyPatch(t *testing.T) {
	var p ClientPatch
	require.True(t, p.IsEmpty())
	require.Empty(t, p.Keys())

	c := Client{FirstName: "Jane"}
	require.Empty(t, p.ApplyTo(&c))
	require.Equal(t, "Jane", c.FirstName)
}
