// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-course-keeper/models"
	"github.com/Masterminds/squirrel"
)

var errInvalidPageSize = errors.New("page size must be positive")

// psql builds PostgreSQL statements with $n placeholders.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var userColumns = []string{"id", "name", "email", "password", "role", "created_at"}

var courseColumns = []string{
	"courses.id",
	"courses.title",
	"courses.description",
	"courses.created_at",
	"COUNT(enrollments.id) AS enrollments",
}

// Sortable columns per table; anything else falls back to id.
var (
	userOrderColumns = map[string]string{
		models.OrderByID:   "id",
		models.OrderByName: "name",
	}
	courseOrderColumns = map[string]string{
		models.OrderByID:    "courses.id",
		models.OrderByTitle: "courses.title",
	}
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern returns an ILIKE pattern matching term literally anywhere
// in the column.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

func orderClauses(columns map[string]string, orderBy string) []string {
	column, ok := columns[orderBy]
	if !ok {
		column = columns[models.OrderByID]
	}

	clauses := []string{column + " ASC"}
	if idColumn := columns[models.OrderByID]; column != idColumn {
		// tie-breaker keeps pages stable for duplicate names/titles
		clauses = append(clauses, idColumn+" ASC")
	}
	return clauses
}

func buildInsertUserQuery(user models.User) (string, []any, error) {
	return psql.Insert("users").
		Columns("name", "email", "password", "role").
		Values(user.Name, user.Email, user.Password, string(user.Role)).
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		ToSql()
}

func buildSelectUserByIDQuery(id string) (string, []any, error) {
	return psql.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"id": id}).
		ToSql()
}

func buildSelectUserByEmailQuery(email string) (string, []any, error) {
	return psql.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"email": email}).
		ToSql()
}

// whereSearch narrows b to rows whose column contains the search term.
// An empty term leaves b unchanged.
func whereSearch(b squirrel.SelectBuilder, column, term string) squirrel.SelectBuilder {
	if term == "" {
		return b
	}
	return b.Where(squirrel.ILike{column: containsPattern(term)})
}

func buildListUsersQuery(query models.ListQuery) (string, []any, error) {
	if query.PageSize <= 0 {
		return "", nil, errInvalidPageSize
	}

	return whereSearch(psql.Select(userColumns...).From("users"), "name", query.Search).
		OrderBy(orderClauses(userOrderColumns, query.OrderBy)...).
		Limit(query.Limit()).
		Offset(query.Offset()).
		ToSql()
}

func buildCountUsersQuery(query models.ListQuery) (string, []any, error) {
	return whereSearch(psql.Select("COUNT(*)").From("users"), "name", query.Search).
		ToSql()
}

func buildInsertCourseQuery(course models.Course) (string, []any, error) {
	return psql.Insert("courses").
		Columns("title", "description").
		Values(course.Title, course.Description).
		Suffix("RETURNING id, title, description, created_at").
		ToSql()
}

func selectCourses() squirrel.SelectBuilder {
	return psql.Select(courseColumns...).
		From("courses").
		LeftJoin("enrollments ON enrollments.course_id = courses.id").
		GroupBy("courses.id")
}

func buildSelectCourseByIDQuery(id string) (string, []any, error) {
	return selectCourses().
		Where(squirrel.Eq{"courses.id": id}).
		ToSql()
}

func buildListCoursesQuery(query models.ListQuery) (string, []any, error) {
	if query.PageSize <= 0 {
		return "", nil, errInvalidPageSize
	}

	return whereSearch(selectCourses(), "courses.title", query.Search).
		OrderBy(orderClauses(courseOrderColumns, query.OrderBy)...).
		Limit(query.Limit()).
		Offset(query.Offset()).
		ToSql()
}

func buildCountCoursesQuery(query models.ListQuery) (string, []any, error) {
	return whereSearch(psql.Select("COUNT(*)").From("courses"), "courses.title", query.Search).
		ToSql()
}
