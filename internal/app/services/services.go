package services

// Services defined in this package:
// - StudentService: student CRUD and credential authentication
// - CourseService: course catalog operations
// - EnrollmentService: enrollment queries by student
// - AcademicsService: grade recording with implicit enrollment
// - FeeService: fee tracking and payment recording
// - ParentService: family views resolving linked children
