package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type testRow struct {
	Id        string `db:"id"`
	Name      string `db:"name"`
	Ignored   string `db:"-"`
	NotTagged string
}

func TestColumnList(t *testing.T) {
	assert.Equal(t, []string{"id", "name"}, ColumnList[testRow]())
	assert.Equal(t, []string{"c.id", "c.name"}, ColumnList[testRow]("c"))
}
