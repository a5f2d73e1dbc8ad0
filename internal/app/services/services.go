package services

// Services defined in this package:
// - AuthService: Handles authentication and user registration
// - ModuleService: Handles training module management
// - ProgressService: Handles per-user module progress tracking and reporting
// - QuizService: Handles quiz retrieval and grading
// - ReminderService: Sends scheduled reminders for overdue required training
