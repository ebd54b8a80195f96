package repositories

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"

	"github.com/scott20050218/HA3/internal/models"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestTaskReadRepository_List_QueryError(t *testing.T) {
	sqlxDB, mock := newMockDB(t)

	mock.ExpectQuery("SELECT id, title, completed").
		WillReturnError(sql.ErrConnDone)

	repo := NewTaskReadRepository(sqlxDB)

	tasks, err := repo.List(context.Background(), models.StatusAll)
	assert.Error(t, err)
	assert.Nil(t, tasks)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskReadRepository_GetByID_QueryError(t *testing.T) {
	sqlxDB, mock := newMockDB(t)

	mock.ExpectQuery("SELECT id, title, completed").
		WithArgs(int64(1)).
		WillReturnError(sql.ErrConnDone)

	repo := NewTaskReadRepository(sqlxDB)

	task, err := repo.GetByID(context.Background(), 1)
	assert.Error(t, err)
	assert.Nil(t, task)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskWriteRepository_Save_QueryError(t *testing.T) {
	sqlxDB, mock := newMockDB(t)

	mock.ExpectQuery("INSERT INTO tasks").
		WithArgs("Buy groceries").
		WillReturnError(sql.ErrConnDone)

	repo := NewTaskWriteRepository(sqlxDB)

	task, err := repo.Save(context.Background(), "Buy groceries")
	assert.Error(t, err)
	assert.Nil(t, task)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskWriteRepository_Update_QueryError(t *testing.T) {
	sqlxDB, mock := newMockDB(t)

	mock.ExpectQuery("UPDATE tasks").
		WillReturnError(sql.ErrConnDone)

	repo := NewTaskWriteRepository(sqlxDB)

	completed := true
	task, err := repo.Update(context.Background(), 1, nil, &completed)
	assert.Error(t, err)
	assert.Nil(t, task)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskWriteRepository_Delete_ExecError(t *testing.T) {
	sqlxDB, mock := newMockDB(t)

	mock.ExpectExec("DELETE FROM tasks WHERE id").
		WithArgs(int64(1)).
		WillReturnError(sql.ErrConnDone)

	repo := NewTaskWriteRepository(sqlxDB)

	deleted, err := repo.Delete(context.Background(), 1)
	assert.Error(t, err)
	assert.False(t, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskWriteRepository_DeleteCompleted_ExecError(t *testing.T) {
	sqlxDB, mock := newMockDB(t)

	mock.ExpectExec("DELETE FROM tasks WHERE completed").
		WillReturnError(sql.ErrConnDone)

	repo := NewTaskWriteRepository(sqlxDB)

	count, err := repo.DeleteCompleted(context.Background())
	assert.Error(t, err)
	assert.Equal(t, int64(0), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskWriteRepository_DeleteAll_ExecError(t *testing.T) {
	sqlxDB, mock := newMockDB(t)

	mock.ExpectExec("DELETE FROM tasks").
		WillReturnError(sql.ErrConnDone)

	repo := NewTaskWriteRepository(sqlxDB)

	count, err := repo.DeleteAll(context.Background())
	assert.Error(t, err)
	assert.Equal(t, int64(0), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserReadRepository_GetByUsername_QueryError(t *testing.T) {
	sqlxDB, mock := newMockDB(t)

	mock.ExpectQuery("SELECT id, username, password_hash").
		WithArgs("alice").
		WillReturnError(sql.ErrConnDone)

	repo := NewUserReadRepository(sqlxDB)

	user, err := repo.GetByUsername(context.Background(), "alice")
	assert.Error(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserReadRepository_Count_QueryError(t *testing.T) {
	sqlxDB, mock := newMockDB(t)

	mock.ExpectQuery("SELECT COUNT").
		WillReturnError(sql.ErrConnDone)

	repo := NewUserReadRepository(sqlxDB)

	count, err := repo.Count(context.Background())
	assert.Error(t, err)
	assert.Equal(t, int64(0), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
