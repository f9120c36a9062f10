package bookmarkrepository

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookmarkRowToDomain(t *testing.T) {
	userID := uuid.New()
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	row := bookmarkRow{
		UserID:    userID,
		ProblemID: "two-sum",
		Notes:     "hash map trick",
		Tags:      []byte(`["array","revisit"]`),
		CreatedAt: created,
	}

	b, err := row.toDomain()
	require.NoError(t, err)
	assert.Equal(t, userID, b.UserID)
	assert.Equal(t, "two-sum", b.ProblemID)
	assert.Equal(t, "hash map trick", b.Notes)
	assert.Equal(t, []string{"array", "revisit"}, b.Tags)
	assert.Equal(t, created, b.CreatedAt)
}

func TestBookmarkRowEmptyTags(t *testing.T) {
	b, err := bookmarkRow{ProblemID: "two-sum"}.toDomain()
	require.NoError(t, err)
	assert.NotNil(t, b.Tags)
	assert.Empty(t, b.Tags)

	_, err = bookmarkRow{ProblemID: "two-sum", Tags: []byte(`{not json`)}.toDomain()
	assert.ErrorContains(t, err, "tags")
}

func TestEncodeTags(t *testing.T) {
	raw, err := encodeTags(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", raw)

	raw, err = encodeTags([]string{"dp", "graph"})
	require.NoError(t, err)
	assert.Equal(t, `["dp","graph"]`, raw)
}
