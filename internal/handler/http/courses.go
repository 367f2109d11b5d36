package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-course-keeper/internal/store"
	"github.com/MKhiriev/go-course-keeper/models"
)

// createCourse godoc
// @Summary     Create a course
// @Tags        courses
// @Accept      json
// @Produce     json
// @Param       request body models.CreateCourseRequest true "Course"
// @Success     201 {object} models.CreateCourseResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     403 {object} models.ErrorResponse
// @Failure     409 {object} models.ErrorResponse
// @Failure     503 {object} models.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /courses [post]
func (h *Handler) createCourse(w http.ResponseWriter, r *http.Request) {
	var request models.CreateCourseRequest
	if err := h.decodeAndValidate(w, r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	course, err := h.services.CourseService.CreateCourse(r.Context(), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.respond(w, r, models.CreateCourseResponse{CourseID: course.ID}, http.StatusCreated)
}

// listCourses godoc
// @Summary     List courses
// @Tags        courses
// @Produce     json
// @Param       search  query string false "Case-insensitive title filter"
// @Param       orderBy query string false "Sort column" Enums(id, title)
// @Param       page    query int    false "1-based page number" minimum(1) maximum(1000000)
// @Success     200 {object} models.CourseListResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     503 {object} models.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /courses [get]
func (h *Handler) listCourses(w http.ResponseWriter, r *http.Request) {
	query, err := h.courseListQuery(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	courses, total, err := h.services.CourseService.ListCourses(r.Context(), query)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if courses == nil {
		courses = []models.Course{}
	}

	h.respond(w, r, models.CourseListResponse{Courses: courses, Total: total}, http.StatusOK)
}

// getCourse godoc
// @Summary     Get a course
// @Tags        courses
// @Produce     json
// @Param       id path string true "Course id" format(uuid)
// @Success     200 {object} models.CourseResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     404
// @Security    ApiKeyAuth
// @Router      /courses/{id} [get]
func (h *Handler) getCourse(w http.ResponseWriter, r *http.Request) {
	id, err := h.idFromPath(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	course, err := h.services.CourseService.GetCourse(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.respond(w, r, models.CourseResponse{Course: course}, http.StatusOK)
}
