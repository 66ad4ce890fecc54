package book

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_ExportCSV(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	s := NewService(mockRepo)

	pages := 320
	mockRepo.EXPECT().All(gomock.Any()).Return([]Book{
		{
			ID:            "b-1",
			ISBN:          "9788960543386",
			Title:         "김승옥 단편선",
			Author:        "김승옥",
			Genre:         "소설",
			Pages:         &pages,
			Language:      "Korean",
			Description:   `작품집, "대표작" 포함`,
			StockQuantity: 2,
		},
	}, nil)

	var buf bytes.Buffer
	require.NoError(t, s.ExportCSV(context.Background(), &buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, csvHeader, records[0])
	row := records[1]
	assert.Equal(t, "김승옥 단편선", row[1])
	assert.Equal(t, "9788960543386", row[3])
	assert.Equal(t, "320", row[6])
	assert.Equal(t, `작품집, "대표작" 포함`, row[8], "quoting must survive the round trip")
	assert.Equal(t, "2", row[10])
}
