package ioimport_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/avherb/herbdb/internal/iodb"
	"github.com/avherb/herbdb/internal/ioimport"
	"github.com/avherb/herbdb/internal/ioschema"
	"github.com/avherb/herbdb/internal/iotesting"
	"github.com/avherb/herbdb/pkg/parserpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDoc = `{
	"species_id": 42,
	"url": "https://herbarium.example/species/42",
	"basic_info": {
		"scientific_name": "Mangifera indica L.",
		"family": "ANACARDIACEAE"
	},
	"images": {"main_specimen": "https://img.example/42.jpg"},
	"nomenclature": {
		"english_names": "Mango, Indian Mango",
		"indian_names": {
			"Tamil": ["Maa"],
			"Hindi": ["Aam"]
		},
		"synonyms": ["Mangifera amba Forssk."]
	},
	"description": {
		"habit": {"text": "A large evergreen tree.", "images": []},
		"leaf": {
			"text": "Leaves alternate.",
			"images": [{"url": "https://img.example/leaf.jpg", "caption": "leaf"}]
		}
	},
	"ecology": {
		"ecology": {"text": "Cultivated throughout India.", "images": []}
	},
	"human_uses": {
		"culinary": {"text": "Fruit eaten ripe and raw.", "images": []}
	}
}`

func TestImportFileRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	cfg := iotesting.GetTestConfig()

	op := iodb.NewPgxOperator()
	require.NoError(t, op.Connect(ctx, &cfg.Database))
	defer op.Close()

	_ = op.DropAllTables(ctx)
	sm := ioschema.NewManager(op)
	require.NoError(t, sm.Create(ctx, cfg))

	dir := t.TempDir()
	path := filepath.Join(dir, "species-42.json")
	require.NoError(t, os.WriteFile(path, []byte(testDoc), 0644))

	parsers := parserpool.NewPool(2)
	defer parsers.Close()
	imp := ioimport.New(op, parsers)

	require.NoError(t, imp.ImportFile(ctx, cfg, path))

	pool := op.Pool()

	var sciName, canonical string
	err := pool.QueryRow(ctx,
		"SELECT scientific_name, canonical_name FROM species WHERE id = 42",
	).Scan(&sciName, &canonical)
	require.NoError(t, err)
	assert.Equal(t, "Mangifera indica L.", sciName)
	assert.Equal(t, "Mangifera indica", canonical)

	var sectionIDs []int
	rows, err := pool.Query(ctx,
		"SELECT id FROM sections WHERE species_id = 42 ORDER BY section_order")
	require.NoError(t, err)
	for rows.Next() {
		var id int
		require.NoError(t, rows.Scan(&id))
		sectionIDs = append(sectionIDs, id)
	}
	require.NoError(t, rows.Err())
	// habit, leaf, human uses, ecology
	assert.Equal(t, []int{4200, 4201, 4202, 4203}, sectionIDs)

	var nameCount int
	err = pool.QueryRow(ctx,
		"SELECT count(*) FROM names WHERE species_id = 42").Scan(&nameCount)
	require.NoError(t, err)
	assert.Equal(t, 4, nameCount, "two English, one Hindi, one Tamil")

	// Re-import must be idempotent: same rows, same ids, no leftovers.
	require.NoError(t, imp.ImportFile(ctx, cfg, path))

	var again []int
	rows, err = pool.Query(ctx,
		"SELECT id FROM sections WHERE species_id = 42 ORDER BY section_order")
	require.NoError(t, err)
	for rows.Next() {
		var id int
		require.NoError(t, rows.Scan(&id))
		again = append(again, id)
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, sectionIDs, again)

	var imgCount int
	err = pool.QueryRow(ctx, `
		SELECT count(*) FROM section_images si
		JOIN sections s ON s.id = si.section_id
		WHERE s.species_id = 42`).Scan(&imgCount)
	require.NoError(t, err)
	assert.Equal(t, 1, imgCount)
}

func TestImportAllIsolatesFailures(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	cfg := iotesting.GetTestConfig()

	op := iodb.NewPgxOperator()
	require.NoError(t, op.Connect(ctx, &cfg.Database))
	defer op.Close()

	_ = op.DropAllTables(ctx)
	sm := ioschema.NewManager(op)
	require.NoError(t, sm.Create(ctx, cfg))

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "species-42.json"), []byte(testDoc), 0644))
	// A document missing its scientific name must fail validation.
	bad := `{"species_id": 43, "url": "https://x", "basic_info": {"family": "F"}}`
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "species-43.json"), []byte(bad), 0644))
	// Bookkeeping files are skipped, not imported.
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "_scraping_status.json"), []byte("{}"), 0644))

	cfg.Import.DocumentsDir = dir
	cfg.JobsNumber = 2

	parsers := parserpool.NewPool(2)
	defer parsers.Close()
	imp := ioimport.New(op, parsers)

	sum, err := imp.ImportAll(ctx, cfg)
	require.Error(t, err, "partial failure must surface as an error")

	assert.Equal(t, 2, sum.Total)
	assert.Equal(t, 1, sum.Succeeded)
	assert.Equal(t, 1, sum.Failed)
	assert.Equal(t, []int{43}, sum.FailedIDs)

	var count int
	require.NoError(t, op.Pool().QueryRow(ctx,
		"SELECT count(*) FROM species").Scan(&count))
	assert.Equal(t, 1, count, "the good species commits despite the bad one")
}
