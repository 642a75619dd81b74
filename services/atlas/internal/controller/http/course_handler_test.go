package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"atlas/pkg/logger"
	"atlas/pkg/models"
	"atlas/services/atlas/internal/entity"
	"atlas/services/atlas/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateCourse_Success(t *testing.T) {
	mockUseCase := new(MockCourseUseCase)
	handler := NewCourseHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/courses", withUser("u1", handler.CreateCourse))

	mockUseCase.On("SaveCourse", mock.Anything, "u1", mock.MatchedBy(func(in usecase.CourseInput) bool {
		return in.ID == "" && in.Title == "Química" && len(in.Classes) == 2
	})).Return(&models.Course{ID: "c1", Title: "Química"}, nil)

	body := `{"id":"ignored","title":"Química","classes":[{"title":"a"},{"title":"b"}]}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/courses", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var course models.Course
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &course))
	assert.Equal(t, "c1", course.ID)
	mockUseCase.AssertExpectations(t)
}

func TestCreateCourse_SaveInProgress(t *testing.T) {
	mockUseCase := new(MockCourseUseCase)
	handler := NewCourseHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/courses", withUser("u1", handler.CreateCourse))

	mockUseCase.On("SaveCourse", mock.Anything, "u1", mock.Anything).Return(nil, usecase.ErrSubmitInFlight)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/courses", bytes.NewBufferString(`{"title":"Química"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.JSONEq(t, `{"message":"save already in progress"}`, w.Body.String())
}

func TestCreateCourse_NotInstructor(t *testing.T) {
	mockUseCase := new(MockCourseUseCase)
	handler := NewCourseHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.POST("/courses", withUser("u1", handler.CreateCourse))

	mockUseCase.On("SaveCourse", mock.Anything, "u1", mock.Anything).Return(nil, usecase.ErrNotInstructor)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/courses", bytes.NewBufferString(`{"title":"Química"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUpdateCourse_UsesPathID(t *testing.T) {
	mockUseCase := new(MockCourseUseCase)
	handler := NewCourseHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.PUT("/courses/:id", withUser("u1", handler.UpdateCourse))

	mockUseCase.On("SaveCourse", mock.Anything, "u1", mock.MatchedBy(func(in usecase.CourseInput) bool {
		return in.ID == "c1"
	})).Return(&models.Course{ID: "c1"}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/courses/c1", bytes.NewBufferString(`{"title":"Química II"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestListCourses_Filter(t *testing.T) {
	mockUseCase := new(MockCourseUseCase)
	handler := NewCourseHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.GET("/courses", withUser("u1", handler.ListCourses))

	filter := entity.CatalogFilter{Search: "química", Level: "basico"}
	mockUseCase.On("Browse", mock.Anything, filter).Return([]models.Course{{ID: "c1"}}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/courses?q=qu%C3%ADmica&level=basico", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockUseCase.AssertExpectations(t)
}

func TestDeleteCourse(t *testing.T) {
	mockUseCase := new(MockCourseUseCase)
	handler := NewCourseHandler(mockUseCase, logger.New())

	router := setupTestRouter()
	router.DELETE("/courses/:id", withUser("u2", handler.DeleteCourse))

	mockUseCase.On("Delete", mock.Anything, "u2", "c1").Return(usecase.ErrNotOwner).Once()
	mockUseCase.On("Delete", mock.Anything, "u2", "c2").Return(nil).Once()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/courses/c1", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("DELETE", "/courses/c2", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)

	mockUseCase.AssertExpectations(t)
}
