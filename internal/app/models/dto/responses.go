package dto

import (
	"time"

	"github.com/google/uuid"

	"scholaris/internal/app/models"
)

// APIResponse is the standard success envelope for API endpoints
type APIResponse struct {
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}

// PaginationInfo describes the page window of a list response
type PaginationInfo struct {
	CurrentPage int   `json:"currentPage" example:"1"`
	TotalPages  int   `json:"totalPages" example:"5"`
	PageSize    int   `json:"pageSize" example:"10"`
	TotalItems  int64 `json:"totalItems" example:"42"`
}

// PagedResponse wraps a page of items together with its pagination info
type PagedResponse struct {
	Items      interface{}    `json:"items"`
	Pagination PaginationInfo `json:"pagination"`
}

// StudentResponse is the read model for students
type StudentResponse struct {
	ID        uuid.UUID       `json:"id"`
	FirstName string          `json:"firstName"`
	LastName  string          `json:"lastName"`
	Email     string          `json:"email"`
	Courses   []models.Course `json:"courses"`
}

// NewStudentResponse builds a StudentResponse from the entity
func NewStudentResponse(student *models.Student) StudentResponse {
	courses := student.Courses
	if courses == nil {
		courses = []models.Course{}
	}
	return StudentResponse{
		ID:        student.ID,
		FirstName: student.FirstName,
		LastName:  student.LastName,
		Email:     student.Email,
		Courses:   courses,
	}
}

// ProfessorResponse is the read model for professors
type ProfessorResponse struct {
	ID          uuid.UUID          `json:"id"`
	FirstName   string             `json:"firstName"`
	LastName    string             `json:"lastName"`
	Email       string             `json:"email"`
	PhoneNumber string             `json:"phoneNumber"`
	Department  *models.Department `json:"department,omitempty"`
	Courses     []models.Course    `json:"courses,omitempty"`
}

// NewProfessorResponse builds a ProfessorResponse from the entity
func NewProfessorResponse(professor *models.Professor) ProfessorResponse {
	return ProfessorResponse{
		ID:          professor.ID,
		FirstName:   professor.FirstName,
		LastName:    professor.LastName,
		Email:       professor.Email,
		PhoneNumber: professor.PhoneNumber,
		Department:  professor.Department,
		Courses:     professor.Courses,
	}
}

// CourseResponse is the read model for courses
type CourseResponse struct {
	ID         int64              `json:"id"`
	Title      string             `json:"title"`
	Department *models.Department `json:"department,omitempty"`
}

// NewCourseResponse builds a CourseResponse from the entity
func NewCourseResponse(course *models.Course) CourseResponse {
	return CourseResponse{
		ID:         course.ID,
		Title:      course.Title,
		Department: course.Department,
	}
}

// StudentProfileResponse is the read model for student profiles
type StudentProfileResponse struct {
	ID          uuid.UUID `json:"id"`
	Address     string    `json:"address"`
	PhoneNumber string    `json:"phoneNumber"`
	StudentID   uuid.UUID `json:"studentId"`
}

// NewStudentProfileResponse builds a StudentProfileResponse from the entity
func NewStudentProfileResponse(profile *models.StudentProfile) StudentProfileResponse {
	return StudentProfileResponse{
		ID:          profile.ID,
		Address:     profile.Address,
		PhoneNumber: profile.PhoneNumber,
		StudentID:   profile.StudentID,
	}
}

// UserResponse is the read model for users; the password hash never leaves
// the service layer.
type UserResponse struct {
	ID       uuid.UUID     `json:"id"`
	Username string        `json:"username"`
	Enabled  bool          `json:"enabled"`
	Roles    []models.Role `json:"roles"`
}

// NewUserResponse builds a UserResponse from the entity
func NewUserResponse(user *models.User) UserResponse {
	roles := user.Roles
	if roles == nil {
		roles = []models.Role{}
	}
	return UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Enabled:  user.Enabled,
		Roles:    roles,
	}
}

// RoleResponse is the read model for roles
type RoleResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// LoginResponse carries the issued access token
type LoginResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int    `json:"expiresIn" example:"3600"`
}
