package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MarsCSmajor/PizzaStore-Project-DataBase/controllers"
)

func TestClientRejectsBadMenuInput(t *testing.T) {
	db := setupClient(t)

	var out bytes.Buffer
	session := controllers.NewSession(strings.NewReader("abc\n7\n9\n"), &out, db)
	session.Run()

	assert.Contains(t, out.String(), "Your input is invalid!")
	assert.Contains(t, out.String(), "Unrecognized choice!")
}

func TestClientSurvivesTruncatedInput(t *testing.T) {
	db := setupClient(t)

	// Input ends mid-prompt while creating a user. The session should
	// wind down instead of looping on EOF.
	var out bytes.Buffer
	session := controllers.NewSession(strings.NewReader("1\nalice\n"), &out, db)
	session.Run()

	assert.Contains(t, out.String(), "MAIN MENU")
}
