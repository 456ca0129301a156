package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"os"
	"strings"
	"time"

	"github.com/2beens/workoutlog/internal/auth"
	"github.com/2beens/workoutlog/internal/config"
	"github.com/2beens/workoutlog/internal/db"
	"github.com/2beens/workoutlog/internal/logging"
	"github.com/2beens/workoutlog/internal/workouts"

	log "github.com/sirupsen/logrus"
)

var defaultExercises = []string{
	"Bench Press",
	"Incline Bench Press",
	"Overhead Press",
	"Dips",
	"Push Up",
	"Squat",
	"Front Squat",
	"Leg Press",
	"Romanian Deadlift",
	"Deadlift",
	"Pull Up",
	"Barbell Row",
	"Lat Pulldown",
	"Biceps Curl",
	"Triceps Pushdown",
	"Lateral Raise",
	"Calf Raise",
	"Plank",
}

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	exercisesFile := flag.String("file", "", "file with one global exercise name per line (default list when empty)")
	username := flag.String("username", "", "optionally create a user with this username")
	password := flag.String("password", "", "password for the created user")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogToStdout: true,
		LogLevel:    cfg.LogLevel,
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBUser:     cfg.PostgresUser,
		DBPassword: os.Getenv("WORKOUTLOG_POSTGRES_PASS"),
	})
	if err != nil {
		log.Fatalf("new db pool: %s", err)
	}
	defer dbPool.Close()

	if err := db.Migrate(ctx, dbPool); err != nil {
		log.Fatalf("migrate: %s", err)
	}
	log.Infoln("schema migrated")

	names := defaultExercises
	if *exercisesFile != "" {
		names, err = readNames(*exercisesFile)
		if err != nil {
			log.Fatalf("read exercises file: %s", err)
		}
	}

	repo := workouts.NewRepo(dbPool, nil)
	added := 0
	for _, name := range names {
		exercise, created, err := repo.CreateGlobalExercise(ctx, name)
		if err != nil {
			log.Fatalf("seed exercise [%s]: %s", name, err)
		}
		if created {
			added++
			log.Debugf("added global exercise [%s]: %s", exercise.Name, exercise.ID)
		}
	}
	log.Infof("global exercises: %d added, %d already present", added, len(names)-added)

	if *username == "" {
		return
	}
	if *password == "" {
		log.Fatalln("password not specified for the new user")
	}

	user, err := auth.NewUsersRepo(dbPool).Create(ctx, *username, *password)
	if err != nil {
		if errors.Is(err, auth.ErrUsernameTaken) {
			log.Warnf("user [%s] already exists", *username)
			return
		}
		log.Fatalf("create user: %s", err)
	}
	log.Infof("user [%s] created: %s", user.Username, user.ID)
}

func readNames(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var names []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	return names, scanner.Err()
}
