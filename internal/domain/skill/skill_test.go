package skill

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	assert.Equal(t, Descriptor{Icon: "react", Color: "#61dafb"}, Lookup("React"))
	assert.Equal(t, Lookup("go"), Lookup("  Golang "))
	assert.Equal(t, Default, Lookup("COBOL"))
	assert.Equal(t, Default, Lookup(""))
}

func TestCategorize(t *testing.T) {
	cats := Categorize([]string{"HTML", "Elm"}, []string{"Go"}, nil)

	require.Len(t, cats, 3)
	assert.Equal(t, TitleFrontend, cats[0].Title)
	assert.Equal(t, TitleBackend, cats[1].Title)
	assert.Equal(t, TitleTools, cats[2].Title)

	require.Len(t, cats[0].Skills, 2)
	assert.Equal(t, "html5", cats[0].Skills[0].Icon)
	assert.Equal(t, "Elm", cats[0].Skills[1].Name)
	assert.Equal(t, Default.Icon, cats[0].Skills[1].Icon)
	assert.NotNil(t, cats[2].Skills)
	assert.Empty(t, cats[2].Skills)
}
