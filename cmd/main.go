package main

import (
	"fmt"
	"log"

	"github.com/AnilSajjanshetty/school-management-2025/internal/config"
	"github.com/AnilSajjanshetty/school-management-2025/internal/handlers"
	"github.com/AnilSajjanshetty/school-management-2025/internal/models"
	"github.com/AnilSajjanshetty/school-management-2025/internal/repository"
	"github.com/AnilSajjanshetty/school-management-2025/internal/services"
	"github.com/AnilSajjanshetty/school-management-2025/pkg/database"
	"github.com/AnilSajjanshetty/school-management-2025/pkg/telegram"

	"github.com/gin-gonic/gin"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Подключаемся к базе данных
	db, err := database.NewDatabase(cfg.DatabaseURL, cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Создаем директора по умолчанию
	if err := db.CreateDefaultHeadmaster(cfg.HeadmasterEmail, cfg.HeadmasterPassword); err != nil {
		log.Printf("Failed to create default headmaster: %v", err)
	}

	// Инициализируем Telegram бота для уведомлений персонала (опционально)
	var telegramBot *telegram.Bot
	if cfg.TelegramBotToken != "" {
		telegramBot, err = telegram.NewBot(cfg.TelegramBotToken, cfg.TelegramStaffChat)
		if err != nil {
			log.Printf("Failed to initialize Telegram bot: %v", err)
		}
	}

	// Создаем репозитории
	userRepo := repository.NewUserRepository(db.DB)
	teacherRepo := repository.NewTeacherRepository(db.DB)
	classRepo := repository.NewClassRepository(db.DB)
	studentRepo := repository.NewStudentRepository(db.DB)
	timetableRepo := repository.NewTimetableRepository(db.DB)
	attendanceRepo := repository.NewAttendanceRepository(db.DB)
	examRepo := repository.NewExamRepository(db.DB)
	progressRepo := repository.NewProgressRepository(db.DB)
	broadcastRepo := repository.NewBroadcastRepository(db.DB)
	contactRepo := repository.NewContactMessageRepository(db.DB)

	// Создаем сервисы
	authService := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiration)
	attendanceService := services.NewAttendanceService(attendanceRepo)
	examService := services.NewExamService(examRepo)
	progressService := services.NewProgressService(progressRepo)
	teacherService := services.NewTeacherService(teacherRepo)
	timetableService := services.NewTimetableService(timetableRepo)
	broadcastService := services.NewBroadcastService(broadcastRepo, contactRepo, studentRepo, telegramBot)
	classTeacherService := services.NewClassTeacherService(
		teacherRepo, classRepo, studentRepo, timetableRepo,
		attendanceRepo, examRepo, broadcastRepo,
	)
	teacherDashboardService := services.NewTeacherDashboardService(
		teacherRepo, classRepo, studentRepo, timetableRepo,
		attendanceRepo, examRepo, progressRepo, broadcastRepo, contactRepo,
	)

	// Создаем обработчики
	authHandler := handlers.NewAuthHandler(authService)
	attendanceHandler := handlers.NewAttendanceHandler(attendanceService)
	examHandler := handlers.NewExamHandler(examService)
	progressHandler := handlers.NewProgressHandler(progressService)
	teacherHandler := handlers.NewTeacherHandler(teacherService)
	timetableHandler := handlers.NewTimetableHandler(timetableService)
	broadcastHandler := handlers.NewBroadcastHandler(broadcastService)
	classTeacherHandler := handlers.NewClassTeacherHandler(classTeacherService)
	teacherDashboardHandler := handlers.NewTeacherDashboardHandler(teacherDashboardService)

	router := gin.Default()

	// Middleware
	router.Use(handlers.CORSMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		// Публичные маршруты
		api.POST("/auth/login", authHandler.Login)
		api.GET("/announcements", broadcastHandler.ListAnnouncements)
		api.GET("/events", broadcastHandler.ListEvents)
		api.GET("/testimonials", broadcastHandler.ListTestimonials)

		// Авторизованные маршруты
		auth := api.Group("")
		auth.Use(handlers.AuthMiddleware(authService))
		{
			auth.GET("/auth/profile", authHandler.GetProfile)

			// Посещаемость
			auth.GET("/attendance",
				handlers.RequireRoles(models.RoleHeadmaster, models.RoleClassTeacher, models.RoleTeacher),
				attendanceHandler.GetDay)
			auth.POST("/attendance",
				handlers.RequireRoles(models.RoleClassTeacher),
				attendanceHandler.MarkDay)

			// Экзамены
			auth.GET("/exams", examHandler.ListByClass)
			auth.POST("/exams",
				handlers.RequireRoles(models.RoleHeadmaster, models.RoleTeacher, models.RoleClassTeacher),
				examHandler.Create)
			auth.POST("/exams/:examId/results",
				handlers.RequireRoles(models.RoleTeacher, models.RoleClassTeacher),
				examHandler.AppendResults)

			// Прогресс учеников
			auth.GET("/progress", progressHandler.ListByStudent)
			auth.POST("/progress",
				handlers.RequireRoles(models.RoleTeacher, models.RoleClassTeacher),
				progressHandler.Create)

			// Управление преподавателями
			auth.GET("/teachers",
				handlers.RequireRoles(models.RoleHeadmaster),
				teacherHandler.List)
			auth.POST("/teachers",
				handlers.RequireRoles(models.RoleHeadmaster),
				teacherHandler.Create)
			auth.DELETE("/teachers/:id",
				handlers.RequireRoles(models.RoleHeadmaster),
				teacherHandler.Delete)

			// Расписание
			auth.GET("/timetables", timetableHandler.ListByClass)
			auth.POST("/timetables",
				handlers.RequireRoles(models.RoleHeadmaster),
				timetableHandler.Create)

			// Объявления, мероприятия и обращения
			auth.POST("/announcements",
				handlers.RequireRoles(models.RoleHeadmaster),
				broadcastHandler.CreateAnnouncement)
			auth.POST("/events",
				handlers.RequireRoles(models.RoleHeadmaster),
				broadcastHandler.CreateEvent)
			auth.POST("/contact-messages",
				handlers.RequireRoles(models.RoleStudent),
				broadcastHandler.CreateContactMessage)
			auth.GET("/contact-messages",
				handlers.RequireRoles(models.RoleHeadmaster),
				broadcastHandler.ListContactMessages)
			auth.PATCH("/contact-messages/:id/status",
				handlers.RequireRoles(models.RoleHeadmaster, models.RoleTeacher, models.RoleClassTeacher),
				broadcastHandler.UpdateContactMessageStatus)

			// Панель классного руководителя
			classTeacher := auth.Group("/class-teacher")
			classTeacher.Use(handlers.RequireRoles(models.RoleClassTeacher))
			{
				classTeacher.GET("/dashboard", classTeacherHandler.GetDashboard)
				classTeacher.GET("/my-class", classTeacherHandler.GetMyClass)
				classTeacher.GET("/teaching-classes", classTeacherHandler.GetTeachingClasses)
				classTeacher.GET("/timetable", classTeacherHandler.GetTimetable)
				classTeacher.GET("/exams", classTeacherHandler.GetExams)
				classTeacher.GET("/announcements", classTeacherHandler.GetAnnouncements)
				classTeacher.GET("/events", classTeacherHandler.GetEvents)
			}

			// Панель предметника
			auth.GET("/teacher/dashboard",
				handlers.RequireRoles(models.RoleTeacher, models.RoleClassTeacher),
				teacherDashboardHandler.GetDashboard)
		}
	}

	// Запускаем сервер
	addr := fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)
	log.Printf("Starting server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
