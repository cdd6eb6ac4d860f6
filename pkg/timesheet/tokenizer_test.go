package timesheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenizeRowLabeled(t *testing.T) {
	tokens, rejected := TokenizeRow([]string{"IN 9:00", "OUT 5:00"})
	require.Empty(t, rejected)
	require.Equal(t, []Token{
		{Kind: LabelToken, Value: "IN"},
		{Kind: TimeToken, Value: "09:00"},
		{Kind: LabelToken, Value: "OUT"},
		{Kind: TimeToken, Value: "05:00"},
	}, tokens)
}

func TestTokenizeRowOrderSpansCells(t *testing.T) {
	tokens, _ := TokenizeRow([]string{"9:00", "", "1715"})
	require.Len(t, tokens, 2)
	assert.Equal(t, "09:00", tokens[0].Value)
	assert.Equal(t, "17:15", tokens[1].Value)
}

func TestTokenizeRowChevronPrePass(t *testing.T) {
	tokens, _ := TokenizeRow([]string{">"})
	require.Len(t, tokens, 1)
	assert.Equal(t, Token{Kind: TimeToken, Value: "07:00"}, tokens[0])
}

func TestTokenizeRowMisreadLiterals(t *testing.T) {
	// II and TO are OCR misreads of 11 and 10; they surface as times.
	tokens, _ := TokenizeRow([]string{"II", "TO"})
	require.Equal(t, []Token{
		{Kind: TimeToken, Value: "11:00"},
		{Kind: TimeToken, Value: "10:00"},
	}, tokens)
}

func TestTokenizeRowRejectsUnreadable(t *testing.T) {
	tokens, rejected := TokenizeRow([]string{"2500"})
	assert.Empty(t, tokens)
	assert.Equal(t, []string{"2500"}, rejected)
}

func TestTokenizeRowSkipsNoise(t *testing.T) {
	tokens, rejected := TokenizeRow([]string{"@#$%", "   ", ""})
	assert.Empty(t, tokens)
	assert.Empty(t, rejected)
}
