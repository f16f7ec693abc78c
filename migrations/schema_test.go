package migrations

import (
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readSchema(t *testing.T) string {
	t.Helper()
	raw, err := os.ReadFile("001_init.sql")
	require.NoError(t, err)
	return string(raw)
}

func tableDDL(t *testing.T, schema, table string) string {
	t.Helper()
	re := regexp.MustCompile(`(?s)CREATE TABLE ` + table + ` \((.*?)\n\);`)
	match := re.FindStringSubmatch(schema)
	require.NotNil(t, match, "table %s not found in schema", table)
	return match[1]
}

// Репозитории собирают запросы через squirrel по именам колонок,
// поэтому DDL обязан содержать всё, на что они ссылаются.

func TestSchema_PricingColumnsMatchRepositories(t *testing.T) {
	schema := readSchema(t)

	assert.Contains(t, tableDDL(t, schema, "court_type_prices"), "price_per_hour")

	slots := tableDDL(t, schema, "time_slots")
	assert.Contains(t, slots, "company_id")
	assert.Contains(t, slots, "start_time")
	assert.Contains(t, slots, "end_time")
}

func TestSchema_LicenseColumnsMatchRepository(t *testing.T) {
	ddl := tableDDL(t, readSchema(t), "licenses")

	for _, column := range []string{"license_key", "license_type", "status", "start_date", "end_date"} {
		assert.Contains(t, ddl, column)
	}
}

func TestSchema_PaymentsRemovedWithReservation(t *testing.T) {
	ddl := tableDDL(t, readSchema(t), "payments")

	var fk string
	for _, line := range strings.Split(ddl, "\n") {
		if strings.Contains(line, "reservation_id") {
			fk = line
		}
	}
	require.NotEmpty(t, fk)
	assert.Contains(t, fk, "ON DELETE CASCADE")
}
