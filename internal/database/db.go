package database

import (
    "context"
    "database/sql"
    "errors"
    "net"
    "time"

    "github.com/go-sql-driver/mysql"
)

// Open connects to MySQL and verifies the connection.  Times are parsed
// into time.Time and kept in UTC; gig times are converted to the
// configured zone only at the HTTP edge.
func Open(user, pass, host, port, name string) (*sql.DB, error) {
    cfg := mysql.NewConfig()
    cfg.User = user
    cfg.Passwd = pass
    cfg.Net = "tcp"
    cfg.Addr = net.JoinHostPort(host, port)
    cfg.DBName = name
    cfg.ParseTime = true
    cfg.Loc = time.UTC
    cfg.Params = map[string]string{"charset": "utf8mb4"}

    db, err := sql.Open("mysql", cfg.FormatDSN())
    if err != nil {
        return nil, err
    }

    db.SetMaxOpenConns(25)
    db.SetMaxIdleConns(25)
    db.SetConnMaxLifetime(30 * time.Minute)

    ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
    defer cancel()
    if err := db.PingContext(ctx); err != nil {
        _ = db.Close()
        return nil, err
    }
    return db, nil
}

// IsDuplicate reports whether err is a MySQL unique-key violation (1062).
func IsDuplicate(err error) bool {
    var me *mysql.MySQLError
    return errors.As(err, &me) && me.Number == 1062
}

// IsForeignKey reports whether err is a MySQL foreign-key violation
// (1451 on delete of a referenced row, 1452 on insert of a dangling one).
func IsForeignKey(err error) bool {
    var me *mysql.MySQLError
    return errors.As(err, &me) && (me.Number == 1451 || me.Number == 1452)
}
