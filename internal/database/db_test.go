package database

import (
    "errors"
    "fmt"
    "testing"

    "github.com/go-sql-driver/mysql"
    "github.com/stretchr/testify/assert"
)

func TestIsDuplicate(t *testing.T) {
    dup := &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}
    assert.True(t, IsDuplicate(dup))
    assert.True(t, IsDuplicate(fmt.Errorf("insert user: %w", dup)))
    assert.False(t, IsDuplicate(&mysql.MySQLError{Number: 1451}))
    assert.False(t, IsDuplicate(errors.New("1062")))
    assert.False(t, IsDuplicate(nil))
}

func TestIsForeignKey(t *testing.T) {
    assert.True(t, IsForeignKey(&mysql.MySQLError{Number: 1451}))
    assert.True(t, IsForeignKey(fmt.Errorf("wrap: %w", &mysql.MySQLError{Number: 1452})))
    assert.False(t, IsForeignKey(&mysql.MySQLError{Number: 1062}))
}
