package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/coursestudio/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func lockRows(id string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id"}).AddRow(id)
}

func countRows(n int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"count"}).AddRow(n)
}

func positionRows(n int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"position"}).AddRow(n)
}

func TestNewSectionRepository(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	db := &sql.DB{}

	repo := NewSectionRepository(db, logger)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
	assert.Equal(t, logger, repo.logger)
}

func TestSectionRepository_GetPublishedByIDAndCourse(t *testing.T) {
	tests := []struct {
		name          string
		setupMock     func(sqlmock.Sqlmock)
		expectedError error
		wantErr       bool
	}{
		{
			name: "success",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT .* FROM sections WHERE id = \? AND course_id = \? AND is_published = TRUE LIMIT 1`).
					WithArgs("s-1", "course-1").
					WillReturnRows(sectionRows().AddRow("s-1", "course-1", "Intro", "About", "https://v", 1, true, true, testTime, testTime))
			},
		},
		{
			name: "unpublished or missing",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT .* FROM sections WHERE id = \? AND course_id = \? AND is_published = TRUE`).
					WithArgs("s-1", "course-1").
					WillReturnError(sql.ErrNoRows)
			},
			expectedError: models.ErrSectionNotFound,
			wantErr:       true,
		},
		{
			name: "database error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT .* FROM sections`).
					WillReturnError(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, cleanup := setupTestDB(t)
			defer cleanup()
			repo := newTestSectionRepository(db)

			tt.setupMock(mock)

			section, err := repo.GetPublishedByIDAndCourse(context.Background(), "s-1", "course-1")

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, section)
				if tt.expectedError != nil {
					assert.ErrorIs(t, err, tt.expectedError)
				}
			} else {
				require.NoError(t, err)
				assert.Equal(t, "s-1", section.ID)
				require.NotNil(t, section.Description)
				assert.Equal(t, "About", *section.Description)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSectionRepository_GetByIDAndCourse(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()
	repo := newTestSectionRepository(db)

	mock.ExpectQuery(`SELECT .* FROM sections WHERE id = \? AND course_id = \? LIMIT 1`).
		WithArgs("s-1", "course-1").
		WillReturnRows(sectionRows().AddRow("s-1", "course-1", "Intro", nil, nil, 1, false, false, testTime, testTime))

	section, err := repo.GetByIDAndCourse(context.Background(), "s-1", "course-1")

	require.NoError(t, err)
	assert.False(t, section.IsPublished)
	assert.Nil(t, section.VideoURL)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSectionRepository_CountPublished(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()
	repo := newTestSectionRepository(db)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM sections WHERE course_id = \? AND is_published = TRUE`).
		WithArgs("course-1").
		WillReturnRows(countRows(3))

	count, err := repo.CountPublished(context.Background(), "course-1")

	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSectionRepository_Create(t *testing.T) {
	newSection := func() *models.Section {
		return &models.Section{
			ID:        "s-3",
			CourseID:  "course-1",
			Title:     "Wrap up",
			CreatedAt: testTime,
			UpdatedAt: testTime,
		}
	}

	tests := []struct {
		name             string
		setupMock        func(sqlmock.Sqlmock)
		expectedError    error
		wantErr          bool
		expectedPosition int
	}{
		{
			name: "appends after last position",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`SELECT id FROM courses WHERE id = \? FOR UPDATE`).
					WithArgs("course-1").
					WillReturnRows(lockRows("course-1"))
				mock.ExpectQuery(`SELECT COALESCE\(MAX\(position\), 0\) FROM sections WHERE course_id = \?`).
					WithArgs("course-1").
					WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(2))
				mock.ExpectExec(`INSERT INTO sections`).
					WithArgs("s-3", "course-1", "Wrap up", 3, false, false, testTime, testTime).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
			expectedPosition: 3,
		},
		{
			name: "first section",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`SELECT id FROM courses WHERE id = \? FOR UPDATE`).
					WithArgs("course-1").
					WillReturnRows(lockRows("course-1"))
				mock.ExpectQuery(`SELECT COALESCE\(MAX\(position\), 0\)`).
					WithArgs("course-1").
					WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(0))
				mock.ExpectExec(`INSERT INTO sections`).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
			expectedPosition: 1,
		},
		{
			name: "course vanished",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`SELECT id FROM courses WHERE id = \? FOR UPDATE`).
					WithArgs("course-1").
					WillReturnError(sql.ErrNoRows)
				mock.ExpectRollback()
			},
			expectedError: models.ErrCourseNotFound,
			wantErr:       true,
		},
		{
			name: "insert error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`SELECT id FROM courses WHERE id = \? FOR UPDATE`).
					WillReturnRows(lockRows("course-1"))
				mock.ExpectQuery(`SELECT COALESCE\(MAX\(position\), 0\)`).
					WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(0))
				mock.ExpectExec(`INSERT INTO sections`).
					WillReturnError(errors.New("insert error"))
				mock.ExpectRollback()
			},
			wantErr: true,
		},
		{
			name: "begin error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin().WillReturnError(errors.New("begin error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, cleanup := setupTestDB(t)
			defer cleanup()
			repo := newTestSectionRepository(db)

			tt.setupMock(mock)

			section := newSection()
			err := repo.Create(context.Background(), section)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.expectedError != nil {
					assert.ErrorIs(t, err, tt.expectedError)
				}
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedPosition, section.Position)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSectionRepository_Update(t *testing.T) {
	title := "Renamed"
	published := false
	free := true
	first := 1
	farAway := 10

	tests := []struct {
		name          string
		req           *models.UpdateSectionRequest
		setupMock     func(sqlmock.Sqlmock)
		expectedError error
		wantErr       bool
	}{
		{
			name: "plain field update does not touch the course",
			req:  &models.UpdateSectionRequest{Title: &title, IsFree: &free},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(`UPDATE sections SET title = \?, is_free = \? WHERE id = \? AND course_id = \?`).
					WithArgs("Renamed", true, "s-1", "course-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectQuery(`SELECT .* FROM sections WHERE id = \? AND course_id = \? LIMIT 1`).
					WithArgs("s-1", "course-1").
					WillReturnRows(sectionRows().AddRow("s-1", "course-1", "Renamed", nil, nil, 1, true, true, testTime, testTime))
				mock.ExpectCommit()
			},
		},
		{
			name: "unpublishing the last published section unpublishes the course",
			req:  &models.UpdateSectionRequest{IsPublished: &published},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`SELECT id FROM courses WHERE id = \? FOR UPDATE`).
					WithArgs("course-1").
					WillReturnRows(lockRows("course-1"))
				mock.ExpectExec(`UPDATE sections SET is_published = \? WHERE id = \? AND course_id = \?`).
					WithArgs(false, "s-1", "course-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectQuery(`SELECT COUNT\(\*\) FROM sections WHERE course_id = \? AND is_published = TRUE`).
					WithArgs("course-1").
					WillReturnRows(countRows(0))
				mock.ExpectExec(`UPDATE courses SET is_published = FALSE WHERE id = \?`).
					WithArgs("course-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectQuery(`SELECT .* FROM sections WHERE id = \? AND course_id = \?`).
					WithArgs("s-1", "course-1").
					WillReturnRows(sectionRows().AddRow("s-1", "course-1", "Intro", nil, nil, 1, false, false, testTime, testTime))
				mock.ExpectCommit()
			},
		},
		{
			name: "unpublishing with other published sections keeps the course",
			req:  &models.UpdateSectionRequest{IsPublished: &published},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`SELECT id FROM courses WHERE id = \? FOR UPDATE`).
					WillReturnRows(lockRows("course-1"))
				mock.ExpectExec(`UPDATE sections SET is_published = \?`).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectQuery(`SELECT COUNT\(\*\) FROM sections`).
					WillReturnRows(countRows(2))
				mock.ExpectQuery(`SELECT .* FROM sections WHERE id = \? AND course_id = \?`).
					WillReturnRows(sectionRows().AddRow("s-1", "course-1", "Intro", nil, nil, 1, false, false, testTime, testTime))
				mock.ExpectCommit()
			},
		},
		{
			name: "moving a section up shifts the sections in between down",
			req:  &models.UpdateSectionRequest{Position: &first},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`SELECT id FROM courses WHERE id = \? FOR UPDATE`).
					WithArgs("course-1").
					WillReturnRows(lockRows("course-1"))
				mock.ExpectQuery(`SELECT position FROM sections WHERE id = \? AND course_id = \?`).
					WithArgs("s-1", "course-1").
					WillReturnRows(positionRows(3))
				mock.ExpectQuery(`SELECT COALESCE\(MAX\(position\), 0\) FROM sections WHERE course_id = \?`).
					WithArgs("course-1").
					WillReturnRows(positionRows(3))
				mock.ExpectExec(`UPDATE sections SET position = position \+ 1 WHERE course_id = \? AND position >= \? AND position < \? AND id <> \?`).
					WithArgs("course-1", 1, 3, "s-1").
					WillReturnResult(sqlmock.NewResult(0, 2))
				mock.ExpectExec(`UPDATE sections SET position = \? WHERE id = \? AND course_id = \?`).
					WithArgs(1, "s-1", "course-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectQuery(`SELECT .* FROM sections WHERE id = \? AND course_id = \? LIMIT 1`).
					WithArgs("s-1", "course-1").
					WillReturnRows(sectionRows().AddRow("s-1", "course-1", "Intro", nil, nil, 1, true, false, testTime, testTime))
				mock.ExpectCommit()
			},
		},
		{
			name: "moving a section past the end clamps to the last position",
			req:  &models.UpdateSectionRequest{Position: &farAway},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`SELECT id FROM courses WHERE id = \? FOR UPDATE`).
					WillReturnRows(lockRows("course-1"))
				mock.ExpectQuery(`SELECT position FROM sections WHERE id = \? AND course_id = \?`).
					WillReturnRows(positionRows(1))
				mock.ExpectQuery(`SELECT COALESCE\(MAX\(position\), 0\) FROM sections`).
					WillReturnRows(positionRows(3))
				mock.ExpectExec(`UPDATE sections SET position = position - 1 WHERE course_id = \? AND position > \? AND position <= \? AND id <> \?`).
					WithArgs("course-1", 1, 3, "s-1").
					WillReturnResult(sqlmock.NewResult(0, 2))
				mock.ExpectExec(`UPDATE sections SET position = \? WHERE id = \? AND course_id = \?`).
					WithArgs(3, "s-1", "course-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectQuery(`SELECT .* FROM sections WHERE id = \? AND course_id = \?`).
					WillReturnRows(sectionRows().AddRow("s-1", "course-1", "Intro", nil, nil, 3, true, false, testTime, testTime))
				mock.ExpectCommit()
			},
		},
		{
			name: "keeping the current position shifts nothing",
			req:  &models.UpdateSectionRequest{Position: &first},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`SELECT id FROM courses WHERE id = \? FOR UPDATE`).
					WillReturnRows(lockRows("course-1"))
				mock.ExpectQuery(`SELECT position FROM sections WHERE id = \? AND course_id = \?`).
					WillReturnRows(positionRows(1))
				mock.ExpectQuery(`SELECT COALESCE\(MAX\(position\), 0\) FROM sections`).
					WillReturnRows(positionRows(3))
				mock.ExpectExec(`UPDATE sections SET position = \? WHERE id = \? AND course_id = \?`).
					WithArgs(1, "s-1", "course-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectQuery(`SELECT .* FROM sections WHERE id = \? AND course_id = \?`).
					WillReturnRows(sectionRows().AddRow("s-1", "course-1", "Intro", nil, nil, 1, true, false, testTime, testTime))
				mock.ExpectCommit()
			},
		},
		{
			name: "moving a missing section",
			req:  &models.UpdateSectionRequest{Position: &first},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`SELECT id FROM courses WHERE id = \? FOR UPDATE`).
					WillReturnRows(lockRows("course-1"))
				mock.ExpectQuery(`SELECT position FROM sections WHERE id = \? AND course_id = \?`).
					WillReturnError(sql.ErrNoRows)
				mock.ExpectRollback()
			},
			expectedError: models.ErrSectionNotFound,
			wantErr:       true,
		},
		{
			name: "shift error rolls back",
			req:  &models.UpdateSectionRequest{Position: &first},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`SELECT id FROM courses WHERE id = \? FOR UPDATE`).
					WillReturnRows(lockRows("course-1"))
				mock.ExpectQuery(`SELECT position FROM sections WHERE id = \? AND course_id = \?`).
					WillReturnRows(positionRows(2))
				mock.ExpectQuery(`SELECT COALESCE\(MAX\(position\), 0\) FROM sections`).
					WillReturnRows(positionRows(3))
				mock.ExpectExec(`UPDATE sections SET position = position \+ 1`).
					WillReturnError(errors.New("shift error"))
				mock.ExpectRollback()
			},
			wantErr: true,
		},
		{
			name:          "no fields",
			req:           &models.UpdateSectionRequest{},
			setupMock:     func(mock sqlmock.Sqlmock) {},
			expectedError: models.ErrNoFieldsToUpdate,
			wantErr:       true,
		},
		{
			name: "section not found",
			req:  &models.UpdateSectionRequest{Title: &title},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(`UPDATE sections`).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectRollback()
			},
			expectedError: models.ErrSectionNotFound,
			wantErr:       true,
		},
		{
			name: "recount error rolls back",
			req:  &models.UpdateSectionRequest{IsPublished: &published},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`SELECT id FROM courses WHERE id = \? FOR UPDATE`).
					WillReturnRows(lockRows("course-1"))
				mock.ExpectExec(`UPDATE sections`).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectQuery(`SELECT COUNT\(\*\) FROM sections`).
					WillReturnError(errors.New("count error"))
				mock.ExpectRollback()
			},
			wantErr: true,
		},
		{
			name: "commit error",
			req:  &models.UpdateSectionRequest{Title: &title},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(`UPDATE sections`).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectQuery(`SELECT .* FROM sections`).
					WillReturnRows(sectionRows().AddRow("s-1", "course-1", "Renamed", nil, nil, 1, true, false, testTime, testTime))
				mock.ExpectCommit().WillReturnError(errors.New("commit error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, cleanup := setupTestDB(t)
			defer cleanup()
			repo := newTestSectionRepository(db)

			tt.setupMock(mock)

			section, err := repo.Update(context.Background(), "s-1", "course-1", tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, section)
				if tt.expectedError != nil {
					assert.ErrorIs(t, err, tt.expectedError)
				}
			} else {
				require.NoError(t, err)
				assert.Equal(t, "s-1", section.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSectionRepository_Delete(t *testing.T) {
	tests := []struct {
		name                string
		setupMock           func(sqlmock.Sqlmock)
		expectedError       error
		wantErr             bool
		expectedUnpublished bool
	}{
		{
			name: "deleting a non-last published section keeps the course published",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`SELECT id FROM courses WHERE id = \? FOR UPDATE`).
					WithArgs("course-1").
					WillReturnRows(lockRows("course-1"))
				mock.ExpectExec(`DELETE FROM sections WHERE id = \? AND course_id = \?`).
					WithArgs("s-2", "course-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectQuery(`SELECT COUNT\(\*\) FROM sections WHERE course_id = \? AND is_published = TRUE`).
					WithArgs("course-1").
					WillReturnRows(countRows(1))
				mock.ExpectCommit()
			},
			expectedUnpublished: false,
		},
		{
			name: "deleting the last published section unpublishes the course",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`SELECT id FROM courses WHERE id = \? FOR UPDATE`).
					WithArgs("course-1").
					WillReturnRows(lockRows("course-1"))
				mock.ExpectExec(`DELETE FROM sections WHERE id = \? AND course_id = \?`).
					WithArgs("s-2", "course-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectQuery(`SELECT COUNT\(\*\) FROM sections WHERE course_id = \? AND is_published = TRUE`).
					WithArgs("course-1").
					WillReturnRows(countRows(0))
				mock.ExpectExec(`UPDATE courses SET is_published = FALSE WHERE id = \?`).
					WithArgs("course-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
			expectedUnpublished: true,
		},
		{
			name: "section already gone",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`SELECT id FROM courses WHERE id = \? FOR UPDATE`).
					WillReturnRows(lockRows("course-1"))
				mock.ExpectExec(`DELETE FROM sections`).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectRollback()
			},
			expectedError: models.ErrSectionNotFound,
			wantErr:       true,
		},
		{
			name: "begin error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin().WillReturnError(errors.New("begin error"))
			},
			wantErr: true,
		},
		{
			name: "lock error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`SELECT id FROM courses WHERE id = \? FOR UPDATE`).
					WillReturnError(errors.New("lock wait timeout"))
				mock.ExpectRollback()
			},
			wantErr: true,
		},
		{
			name: "delete error rolls back",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`SELECT id FROM courses WHERE id = \? FOR UPDATE`).
					WillReturnRows(lockRows("course-1"))
				mock.ExpectExec(`DELETE FROM sections`).
					WillReturnError(errors.New("delete error"))
				mock.ExpectRollback()
			},
			wantErr: true,
		},
		{
			name: "unpublish error rolls back the delete",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`SELECT id FROM courses WHERE id = \? FOR UPDATE`).
					WillReturnRows(lockRows("course-1"))
				mock.ExpectExec(`DELETE FROM sections`).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectQuery(`SELECT COUNT\(\*\) FROM sections`).
					WillReturnRows(countRows(0))
				mock.ExpectExec(`UPDATE courses SET is_published = FALSE`).
					WillReturnError(errors.New("update error"))
				mock.ExpectRollback()
			},
			wantErr: true,
		},
		{
			name: "commit error",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`SELECT id FROM courses WHERE id = \? FOR UPDATE`).
					WillReturnRows(lockRows("course-1"))
				mock.ExpectExec(`DELETE FROM sections`).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectQuery(`SELECT COUNT\(\*\) FROM sections`).
					WillReturnRows(countRows(1))
				mock.ExpectCommit().WillReturnError(errors.New("commit error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, cleanup := setupTestDB(t)
			defer cleanup()
			repo := newTestSectionRepository(db)

			tt.setupMock(mock)

			unpublished, err := repo.Delete(context.Background(), "s-2", "course-1")

			if tt.wantErr {
				assert.Error(t, err)
				assert.False(t, unpublished)
				if tt.expectedError != nil {
					assert.ErrorIs(t, err, tt.expectedError)
				}
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedUnpublished, unpublished)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
