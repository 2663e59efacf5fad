package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHelpersFallBack(t *testing.T) {
	t.Setenv("RECRUIT_TEST_INT", "nope")
	t.Setenv("RECRUIT_TEST_DURATION", "90s")
	t.Setenv("RECRUIT_TEST_EMPTY", "")

	assert.Equal(t, 7, getInt("RECRUIT_TEST_INT", 7))
	assert.Equal(t, 90*time.Second, getDuration("RECRUIT_TEST_DURATION", time.Second))
	assert.Equal(t, "x", getEnv("RECRUIT_TEST_EMPTY", "x"))
	assert.Equal(t, "y", getEnv("RECRUIT_TEST_MISSING", "y"))
}

func TestDSN(t *testing.T) {
	c := &DBConfig{Host: "db", Port: "5432", User: "app", Password: "secret", Name: "recruit", SSLMode: "disable", TimeZone: "UTC"}
	assert.Equal(t, "host=db user=app password=secret dbname=recruit port=5432 sslmode=disable TimeZone=UTC", c.DSN())
}
