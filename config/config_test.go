package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAdminEmails(t *testing.T) {
	assert.Nil(t, parseAdminEmails(""))

	assert.Equal(t,
		[]string{"admin1@example.com", "admin2@example.com"},
		parseAdminEmails("admin1@example.com,admin2@example.com"))

	// Пробелы вокруг адресов обрезаются, пустые элементы отбрасываются
	assert.Equal(t,
		[]string{"admin1@example.com", "admin2@example.com"},
		parseAdminEmails(" admin1@example.com , admin2@example.com ,"))
}
