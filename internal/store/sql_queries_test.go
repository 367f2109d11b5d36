// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/MKhiriev/go-course-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildInsertUserQuery(t *testing.T) {
	query, args, err := buildInsertUserQuery(models.User{
		Name:     "John",
		Email:    "john@example.com",
		Password: "hash",
		Role:     models.RoleManager,
	})
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into users")
	require.Contains(t, q, "returning id, name, email, password, role, created_at")
	require.Contains(t, query, "$4")
	require.Equal(t, []any{"John", "john@example.com", "hash", "manager"}, args)
}

func Test_buildSelectUserQueries(t *testing.T) {
	query, args, err := buildSelectUserByIDQuery("abc")
	require.NoError(t, err)
	assert.Contains(t, query, "WHERE id = $1")
	assert.Equal(t, []any{"abc"}, args)

	query, args, err = buildSelectUserByEmailQuery("john@example.com")
	require.NoError(t, err)
	assert.Contains(t, query, "WHERE email = $1")
	assert.Equal(t, []any{"john@example.com"}, args)
	assert.NotContains(t, strings.ToLower(query), "limit")
}

func Test_buildListUsersQuery(t *testing.T) {
	tests := []struct {
		name      string
		query     models.ListQuery
		wantParts []string
		wantArgs  []any
	}{
		{
			name:      "defaults order by id",
			query:     models.ListQuery{Page: 1, PageSize: 10},
			wantParts: []string{"ORDER BY id ASC LIMIT 10 OFFSET 0"},
		},
		{
			name:      "search and order by name",
			query:     models.ListQuery{Search: "ann", OrderBy: models.OrderByName, Page: 3, PageSize: 10},
			wantParts: []string{"WHERE name ILIKE $1", "ORDER BY name ASC, id ASC", "LIMIT 10 OFFSET 20"},
			wantArgs:  []any{"%ann%"},
		},
		{
			name:      "unknown order column falls back to id",
			query:     models.ListQuery{OrderBy: "password", Page: 1, PageSize: 5},
			wantParts: []string{"ORDER BY id ASC LIMIT 5"},
		},
		{
			name:      "like wildcards are escaped",
			query:     models.ListQuery{Search: `a_b%c\`, Page: 1, PageSize: 5},
			wantParts: []string{"ILIKE $1"},
			wantArgs:  []any{`%a\_b\%c\\%`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildListUsersQuery(tt.query)
			require.NoError(t, err)
			for _, part := range tt.wantParts {
				assert.Contains(t, query, part)
			}
			assert.NotContains(t, query, "password ASC")
			if tt.wantArgs == nil {
				assert.Empty(t, args)
			} else {
				assert.Equal(t, tt.wantArgs, args)
			}
		})
	}
}

func Test_buildListQueries_InvalidPageSize(t *testing.T) {
	_, _, err := buildListUsersQuery(models.ListQuery{Page: 1})
	assert.ErrorIs(t, err, errInvalidPageSize)

	_, _, err = buildListCoursesQuery(models.ListQuery{Page: 1, PageSize: -1})
	assert.ErrorIs(t, err, errInvalidPageSize)
}

func Test_buildCountQueries(t *testing.T) {
	query, args, err := buildCountUsersQuery(models.ListQuery{Search: "jo", Page: 4, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, "SELECT COUNT(*) FROM users WHERE name ILIKE $1", query)
	assert.Equal(t, []any{"%jo%"}, args)

	query, args, err = buildCountCoursesQuery(models.ListQuery{})
	require.NoError(t, err)
	assert.Equal(t, "SELECT COUNT(*) FROM courses", query)
	assert.Empty(t, args)
}

func Test_buildCourseQueries(t *testing.T) {
	query, args, err := buildInsertCourseQuery(models.Course{Title: "Go basics", Description: "Learn the Go language"})
	require.NoError(t, err)
	assert.Contains(t, query, "INSERT INTO courses (title,description) VALUES ($1,$2)")
	assert.Equal(t, []any{"Go basics", "Learn the Go language"}, args)

	query, args, err = buildSelectCourseByIDQuery("abc")
	require.NoError(t, err)
	assert.Contains(t, query, "COUNT(enrollments.id) AS enrollments")
	assert.Contains(t, query, "LEFT JOIN enrollments ON enrollments.course_id = courses.id")
	assert.Contains(t, query, "WHERE courses.id = $1 GROUP BY courses.id")
	assert.Equal(t, []any{"abc"}, args)

	query, args, err = buildListCoursesQuery(models.ListQuery{Search: "go", OrderBy: models.OrderByTitle, Page: 2, PageSize: 10})
	require.NoError(t, err)
	assert.Contains(t, query, "WHERE courses.title ILIKE $1 GROUP BY courses.id ORDER BY courses.title ASC, courses.id ASC LIMIT 10 OFFSET 10")
	assert.Equal(t, []any{"%go%"}, args)
}
