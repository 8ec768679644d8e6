package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_OnActiveRecurringQuery_KeepsEndedTemplatesUntilCaughtUp(t *testing.T) {
	asOf := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

	sqlStr, args, err := activeRecurringQuery(asOf).ToSql()

	require.NoError(t, err)
	assert.Equal(t, []interface{}{true, asOf}, args)
	assert.Contains(t, sqlStr, "is_active = $1")
	assert.Contains(t, sqlStr, "start_date <= $2")
	assert.Contains(t, sqlStr,
		"(end_date IS NULL OR last_generated_date IS NULL OR last_generated_date < end_date)")
	assert.NotContains(t, sqlStr, "end_date >=")
}
