package dto

// StudentRequest is the payload for registering a student. Course titles are
// resolved through get-or-create; address and phone seed the student's
// profile.
type StudentRequest struct {
	FirstName    string   `json:"firstName" binding:"required" example:"Jane"`
	LastName     string   `json:"lastName" binding:"required" example:"Doe"`
	Email        string   `json:"email" binding:"required,email" example:"jane.doe@example.com"`
	CourseTitles []string `json:"courseTitles" binding:"required,min=1" example:"Math,Physics"`
	Address      string   `json:"address" binding:"required" example:"12 Main St"`
	PhoneNumber  string   `json:"phoneNumber" binding:"required" example:"+40700000000"`
}

// ProfessorRequest is the payload for registering a professor. The
// department must already exist; each course title becomes a new course
// owned by the professor.
type ProfessorRequest struct {
	FirstName    string   `json:"firstName" binding:"required" example:"John"`
	LastName     string   `json:"lastName" binding:"required" example:"Smith"`
	Email        string   `json:"email" binding:"required,email" example:"john.smith@example.com"`
	PhoneNumber  string   `json:"phoneNumber" binding:"required" example:"+40711111111"`
	CourseTitles []string `json:"courseTitles" binding:"required,min=1" example:"Algebra"`
	Department   string   `json:"department" binding:"required" example:"Computer Science"`
}

// ProfessorUpdateRequest overwrites a professor's contact details and
// department reference.
type ProfessorUpdateRequest struct {
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Department  string `json:"department" binding:"required"`
}

// StudentProfileRequest is the payload for the explicit profile endpoint
type StudentProfileRequest struct {
	Address     string `json:"address" binding:"required"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
}

// CourseRequest is the payload for creating a course by title
type CourseRequest struct {
	Title string `json:"title" binding:"required" example:"Math"`
}

// DepartmentRequest is the payload for creating a department
type DepartmentRequest struct {
	Name string `json:"name" binding:"required" example:"Computer Science"`
}

// UserRequest is the payload for registering a user. Every listed role must
// already exist.
type UserRequest struct {
	Username string   `json:"username" binding:"required" example:"jdoe"`
	Password string   `json:"password" binding:"required,min=4"`
	Roles    []string `json:"roles" example:"ADMIN"`
}

// RoleRequest is the payload for creating a role
type RoleRequest struct {
	Name string `json:"name" binding:"required" example:"REGISTRAR"`
}

// LoginRequest is the payload for the login endpoint
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
