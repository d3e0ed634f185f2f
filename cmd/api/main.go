package main

import (
	"time"

	"tangle/internal/config"
	"tangle/internal/handler"
	"tangle/internal/model"
	"tangle/internal/pkg"
	"tangle/internal/repository/mysql"
	"tangle/internal/repository/redis"
	"tangle/internal/router"
	"tangle/internal/service"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("config load failed")
	}

	logrus.SetFormatter(&logrus.JSONFormatter{})

	pkg.ConfigureTokens(
		[]byte(cfg.JWTAccessSecret),
		[]byte(cfg.JWTRefreshSecret),
		time.Duration(cfg.AccessTTLMin)*time.Minute,
		time.Duration(cfg.RefreshTTLHr)*time.Hour,
	)

	db, err := mysql.InitDB(cfg.MySQLDSN)
	if err != nil {
		logrus.WithError(err).Fatal("mysql connect failed")
	}
	if err := db.AutoMigrate(
		&model.User{},
		&model.Community{},
		&model.Post{},
		&model.Comment{},
		&model.Report{},
	); err != nil {
		logrus.WithError(err).Fatal("migrate failed")
	}

	rdb, err := redis.New(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		logrus.WithError(err).Fatal("redis connect failed")
	}

	users := &mysql.UserRepository{DB: db}
	communities := &mysql.CommunityRepository{DB: db}
	posts := &mysql.PostRepository{DB: db}
	comments := &mysql.CommentRepository{DB: db}
	reports := &mysql.ReportRepository{DB: db}
	tokens := &redis.TokenRepository{RDB: rdb, TTL: pkg.AccessTTL()}

	var producer *pkg.ReportProducer
	if len(cfg.KafkaBrokers) > 0 {
		producer = pkg.NewReportProducer(pkg.KafkaConfig{
			Brokers: cfg.KafkaBrokers,
			Topic:   cfg.KafkaReportTopic,
		})
		defer producer.Close()
	}

	var mailer *pkg.Mailer
	if cfg.SMTPHost != "" {
		mailer = pkg.NewMailer(pkg.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			From:     cfg.SMTPFrom,
		})
	}

	userSvc := service.NewUserService(users, communities, tokens)
	communitySvc := service.NewCommunityService(communities)
	postSvc := service.NewPostService(posts)
	commentSvc := service.NewCommentService(comments, posts)
	moderationSvc := service.NewModerationService(posts, reports, producer, mailer, cfg.ModeratorEmail)

	r := router.New(router.Deps{
		Auth:      handler.NewAuthHandler(userSvc),
		Community: handler.NewCommunityHandler(communitySvc),
		Post:      handler.NewPostHandler(postSvc, moderationSvc),
		Comment:   handler.NewCommentHandler(commentSvc),
		Users:     users,
		Tokens:    tokens,
	})

	logrus.WithField("addr", cfg.HTTPAddr).Info("tangle api listening")
	if err := r.Run(cfg.HTTPAddr); err != nil {
		logrus.WithError(err).Fatal("server exited")
	}
}
