package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/divine-age/rulesheet-go/pkg/rulesheet/models"
)

func TestToJSONMetricRecords(t *testing.T) {
	records := []models.MetricRecord{
		{StateJurisdictionID: "USA-TX", MetricName: "age_requirement", MetricValue: "13"},
		{StateJurisdictionID: "USA-TX", MetricName: "parental_consent", MetricValue: "true"},
	}

	data, err := ToJSON(records)
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "us_state_matrix", data)
}

func TestToJSONRecordsKeepOrderAndText(t *testing.T) {
	rec := models.NewRecord(4)
	rec.Set("jurisdiction_id", "CAN-QC")
	rec.Set("name", "Québec")
	rec.Set("min_age", int64(14))
	rec.Set("summary", "users <16 need consent & review")
	rec.Set("active", true)
	rec.Set("notes", nil)

	data, err := ToJSON([]models.Record{rec})
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "jurisdictions", data)
}

func TestToJSONEmpty(t *testing.T) {
	var records []models.Record
	data, err := ToJSON(records)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "1-jurisdictions.json", FileName(1, "jurisdictions"))
	assert.Equal(t, "9-us_state_matrix.json", FileName(9, "us_state_matrix"))
}

func TestWriteFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	path, err := WriteFile(dir, FileName(6, "sources"), []models.MetricRecord{})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "6-sources.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}
