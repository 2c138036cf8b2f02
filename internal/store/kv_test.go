package store

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestSQLGetSetDelete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS kv_store").
		WillReturnResult(sqlmock.NewResult(0, 0))

	mock.ExpectQuery("SELECT v FROM kv_store").WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"v"}))

	mock.ExpectExec("INSERT INTO kv_store").WithArgs("a", "1").
		WillReturnResult(sqlmock.NewResult(1, 1))

	mock.ExpectQuery("SELECT v FROM kv_store").WithArgs("a").
		WillReturnRows(sqlmock.NewRows([]string{"v"}).AddRow("1"))

	mock.ExpectExec("DELETE FROM kv_store").WithArgs("a").
		WillReturnResult(sqlmock.NewResult(0, 1))

	kv := &SQL{DB: db}

	if _, ok, err := kv.Get("missing"); err != nil || ok {
		t.Fatalf("missing key: ok=%v err=%v", ok, err)
	}
	if err := kv.Set("a", "1"); err != nil {
		t.Fatalf("set error: %v", err)
	}
	v, ok, err := kv.Get("a")
	if err != nil || !ok || v != "1" {
		t.Fatalf("get a: v=%q ok=%v err=%v", v, ok, err)
	}
	if err := kv.Delete("a"); err != nil {
		t.Fatalf("delete error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestMemoryRoundTrip(t *testing.T) {
	kv := NewMemory()
	if _, ok, _ := kv.Get("x"); ok {
		t.Fatal("unexpected hit on empty store")
	}
	if err := kv.Set("x", "y"); err != nil {
		t.Fatalf("set error: %v", err)
	}
	v, ok, _ := kv.Get("x")
	if !ok || v != "y" {
		t.Fatalf("get x: v=%q ok=%v", v, ok)
	}
	if err := kv.Delete("x"); err != nil {
		t.Fatalf("delete error: %v", err)
	}
	if _, ok, _ := kv.Get("x"); ok {
		t.Fatal("key survived delete")
	}
}
