// Package notes provides the server-side persistence layer for notes.
//
// The package defines a Repository interface and a SQLite implementation
// (SQLiteRepository) over dbx.DBTX, so the same repository works on a *sql.DB
// or inside a transaction started with dbx.WithTx.
//
// Notes are ordered by an autoincrement seq column, which gives List its
// insertion order. The public identifier is the id column.
//
//	repo := notes.NewSQLiteRepository(db)
//	_ = repo.Create(ctx, note)
//	all, _ := repo.List(ctx)
package notes
