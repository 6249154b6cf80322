package postgres

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSchema_HasQueriedColumns(t *testing.T) {
	for _, col := range []string{
		"project_id", "event_name", "user_id", "page", "country", "locale",
		"referrer", "device", "browser", "os", "utm_source", "utm_medium",
		"utm_campaign", "load_time_bucket", "event_time", "tags", "metadata",
	} {
		assert.Contains(t, Schema(), "\n    "+col+" ", col)
	}
	assert.Contains(t, Schema(), "dedupe_key       TEXT        NOT NULL UNIQUE")
}

func TestSchema_Idempotent(t *testing.T) {
	for _, stmt := range strings.Split(Schema(), ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		assert.Contains(t, stmt, "IF NOT EXISTS")
	}
}

func TestWithTimeout(t *testing.T) {
	d := NewDB(nil, 50*time.Millisecond)
	ctx, cancel := d.withTimeout(context.Background())
	defer cancel()

	deadline, ok := ctx.Deadline()
	assert.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(50*time.Millisecond), deadline, time.Second)

	unbounded := NewDB(nil, 0)
	ctx2, cancel2 := unbounded.withTimeout(context.Background())
	defer cancel2()
	_, ok = ctx2.Deadline()
	assert.False(t, ok)
}
