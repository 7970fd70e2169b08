package database

import (
	"bytes"
	"strings"
	"testing"

	"github.com/MarsCSmajor/PizzaStore-Project-DataBase/models"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupGatewayTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Item{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

func TestExecuteUpdateAndQueryRows(t *testing.T) {
	gw := NewGateway(setupGatewayTestDB(t))

	err := gw.ExecuteUpdate(
		"INSERT INTO users (login, password, role, favorite_items, phone_num) VALUES (?, ?, ?, ?, ?)",
		"alice", "pw", "customer", "", "123-456-7890")
	assert.NoError(t, err)

	rows, err := gw.QueryRows("SELECT login, role FROM users WHERE login = ?", "alice")
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, []string{"alice", "customer"}, rows[0])
}

func TestQueryRowsEmptyResult(t *testing.T) {
	gw := NewGateway(setupGatewayTestDB(t))

	rows, err := gw.QueryRows("SELECT login FROM users WHERE login = ?", "nobody")
	assert.NoError(t, err)
	assert.Empty(t, rows, "No matching rows should produce an empty sequence, not an error")
}

func TestExecuteUpdateMalformedSQL(t *testing.T) {
	gw := NewGateway(setupGatewayTestDB(t))

	err := gw.ExecuteUpdate("INSERT INTO no_such_table VALUES (1)")
	assert.Error(t, err, "Malformed SQL should surface as a data-access error")
}

func TestRowCount(t *testing.T) {
	gw := NewGateway(setupGatewayTestDB(t))

	for _, login := range []string{"a", "b", "c"} {
		err := gw.ExecuteUpdate(
			"INSERT INTO users (login, password, role, favorite_items, phone_num) VALUES (?, 'pw', 'customer', '', '')",
			login)
		assert.NoError(t, err)
	}

	count, err := gw.RowCount("SELECT login FROM users")
	assert.NoError(t, err)
	assert.Equal(t, 3, count)

	count, err = gw.RowCount("SELECT login FROM users WHERE login = ?", "missing")
	assert.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestCurrSeqValUnknownSequence(t *testing.T) {
	gw := NewGateway(setupGatewayTestDB(t))

	// sqlite has no currval(), so the lookup fails and -1 is reported
	val, err := gw.CurrSeqVal("no_such_seq")
	assert.Error(t, err)
	assert.Equal(t, -1, val)
}

func TestDumpQuery(t *testing.T) {
	gw := NewGateway(setupGatewayTestDB(t))

	err := gw.ExecuteUpdate(
		"INSERT INTO items (item_name, ingredients, type_of_item, price, description) VALUES ('Pepperoni Pizza', 'dough,cheese', 'entree', 12.5, 'classic')")
	assert.NoError(t, err)

	var buf bytes.Buffer
	count, err := gw.DumpQuery(&buf, "SELECT item_name, price FROM items")
	assert.NoError(t, err)
	assert.Equal(t, 1, count)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 2, "Expected a header line plus one data line")
	assert.Equal(t, "item_name\tprice", lines[0])
	assert.Equal(t, "Pepperoni Pizza\t12.5", lines[1])
}

func TestDumpQueryNoRows(t *testing.T) {
	gw := NewGateway(setupGatewayTestDB(t))

	var buf bytes.Buffer
	count, err := gw.DumpQuery(&buf, "SELECT login FROM users")
	assert.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.Equal(t, "", buf.String(), "No rows should produce no output at all")
}
