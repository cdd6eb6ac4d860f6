package extract

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/textract"
	"github.com/aws/aws-sdk-go-v2/service/textract/types"
)

// TextractClient is the slice of the Textract API the provider needs.
type TextractClient interface {
	AnalyzeDocument(ctx context.Context, params *textract.AnalyzeDocumentInput, optFns ...func(*textract.Options)) (*textract.AnalyzeDocumentOutput, error)
}

// TextractProvider extracts table cells with AWS Textract. Calls are
// blocking and are not retried; a service error aborts the run.
type TextractProvider struct {
	client TextractClient
	doc    types.Document
}

// NewTextractS3 analyzes an object already uploaded to S3.
func NewTextractS3(client TextractClient, bucket, key string) *TextractProvider {
	return &TextractProvider{
		client: client,
		doc: types.Document{
			S3Object: &types.S3Object{Bucket: aws.String(bucket), Name: aws.String(key)},
		},
	}
}

// NewTextractBytes analyzes an in-memory image.
func NewTextractBytes(client TextractClient, image []byte) *TextractProvider {
	return &TextractProvider{client: client, doc: types.Document{Bytes: image}}
}

// ExtractCells runs table analysis and returns the first table's cells.
func (p *TextractProvider) ExtractCells(ctx context.Context) ([]Cell, error) {
	out, err := p.client.AnalyzeDocument(ctx, &textract.AnalyzeDocumentInput{
		Document:     &p.doc,
		FeatureTypes: []types.FeatureType{types.FeatureTypeTables, types.FeatureTypeForms},
	})
	if err != nil {
		return nil, fmt.Errorf("textract analyze: %w", err)
	}
	return cellsFromBlocks(out.Blocks)
}

// cellsFromBlocks walks a Textract block list: the first TABLE block's CELL
// children become cells, each cell's text assembled from its child WORD
// blocks in document order.
func cellsFromBlocks(blocks []types.Block) ([]Cell, error) {
	byID := make(map[string]types.Block, len(blocks))
	for _, b := range blocks {
		if b.Id != nil {
			byID[*b.Id] = b
		}
	}

	var table *types.Block
	for i := range blocks {
		if blocks[i].BlockType == types.BlockTypeTable {
			table = &blocks[i]
			break
		}
	}
	if table == nil {
		return nil, ErrNoTable
	}

	var cells []Cell
	for _, rel := range table.Relationships {
		if rel.Type != types.RelationshipTypeChild {
			continue
		}
		for _, id := range rel.Ids {
			b, ok := byID[id]
			if !ok || b.BlockType != types.BlockTypeCell {
				continue
			}
			if b.RowIndex == nil || b.ColumnIndex == nil {
				continue
			}
			cells = append(cells, Cell{
				Row:  int(*b.RowIndex),
				Col:  int(*b.ColumnIndex),
				Text: strings.TrimSpace(blockText(b, byID)),
			})
		}
	}
	return cells, nil
}

// blockText returns a block's direct text, or the space-joined text of its
// CHILD blocks when it has none of its own.
func blockText(b types.Block, byID map[string]types.Block) string {
	if b.Text != nil && *b.Text != "" {
		return *b.Text
	}
	var parts []string
	for _, rel := range b.Relationships {
		if rel.Type != types.RelationshipTypeChild {
			continue
		}
		for _, id := range rel.Ids {
			child, ok := byID[id]
			if !ok {
				continue
			}
			if t := blockText(child, byID); t != "" {
				parts = append(parts, t)
			}
		}
	}
	return strings.Join(parts, " ")
}
