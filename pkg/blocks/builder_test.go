package blocks

import (
	"encoding/json"
	"testing"

	"github.com/aretw0/scribe/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParagraph_TrimsText(t *testing.T) {
	b := Paragraph("  Hello world \n")

	assert.Equal(t, domain.BlockParagraph, b.Type)
	assert.Equal(t, "block", b.Object)
	assert.Nil(t, b.Heading2)
	require.NotNil(t, b.Paragraph)
	assert.Equal(t, "Hello world", b.Text())
}

func TestHeading_TrimsText(t *testing.T) {
	b := Heading("\tSection ")

	assert.True(t, b.IsHeading())
	assert.Nil(t, b.Paragraph)
	assert.Equal(t, "Section", b.Text())
}

func TestHeadingIfPresent(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		wantOK bool
		want   string
	}{
		{"Empty", "", false, ""},
		{"Spaces", "   ", false, ""},
		{"Whitespace Mix", " \t\n ", false, ""},
		{"Text", "Section", true, "Section"},
		{"Padded Text", "  Section  ", true, "Section"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, ok := HeadingIfPresent(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.want, b.Text())
			}
		})
	}
}

func TestParagraph_WireShape(t *testing.T) {
	data, err := json.Marshal(Paragraph("Body"))
	require.NoError(t, err)

	expected := `{"object":"block","type":"paragraph","paragraph":{"rich_text":[{"type":"text","text":{"content":"Body"}}]}}`
	assert.JSONEq(t, expected, string(data))
}

func TestHeading_WireShape(t *testing.T) {
	data, err := json.Marshal(Heading("Title"))
	require.NoError(t, err)

	expected := `{"object":"block","type":"heading_2","heading_2":{"rich_text":[{"type":"text","text":{"content":"Title"}}]}}`
	assert.JSONEq(t, expected, string(data))
}
