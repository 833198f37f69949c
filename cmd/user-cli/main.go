// cmd/user-cli/main.go
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"go_5_vocab_bookmark/internal/config"
	"go_5_vocab_bookmark/internal/middleware"
	"go_5_vocab_bookmark/internal/model"
	"go_5_vocab_bookmark/internal/repository"
	"go_5_vocab_bookmark/internal/service"
	"go_5_vocab_bookmark/internal/webutil"
)

const usage = `usage: user-cli [-config dir] <command> [flags]

commands:
  create -kakao-id N -nickname NAME [-email ADDR] [-password PASS]
  show   -id N
  delete -id N
`

func main() {
	configDir := flag.String("config", "configs", "config.yaml を探すディレクトリ")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger := config.NewLogger(os.Stderr, cfg.Log.Level, os.Getenv("APP_ENV"))
	slog.SetDefault(logger)

	db, err := repository.NewDB(cfg.Database.Driver, cfg.Database.URL, logger)
	if err != nil {
		logger.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	users := service.NewUserService(db,
		repository.NewGormUserRepository(),
		repository.NewGormBookmarkRepository(),
		repository.NewGormSearchHistoryRepository(),
	)
	ctx := middleware.WithLogger(context.Background(), logger)

	if err := run(ctx, users, flag.Arg(0), flag.Args()[1:]); err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) {
			fmt.Fprintf(os.Stderr, "%s: %s\n", appErr.Detail.Code, appErr.Detail.Message)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, users service.UserService, cmd string, args []string) error {
	switch cmd {
	case "create":
		fs := flag.NewFlagSet("create", flag.ExitOnError)
		kakaoID := fs.Int64("kakao-id", 0, "Kakao ユーザーID")
		nickname := fs.String("nickname", "", "ニックネーム")
		email := fs.String("email", "", "メールアドレス (任意)")
		password := fs.String("password", "", "パスワード (任意)")
		_ = fs.Parse(args)

		req := model.CreateUserRequest{KakaoID: *kakaoID, Nickname: *nickname}
		if *email != "" {
			req.Email = email
		}
		if *password != "" {
			req.Password = password
		}
		if err := webutil.ValidateStruct(req); err != nil {
			return err
		}
		user, err := users.CreateUser(ctx, &req)
		if err != nil {
			return err
		}
		return printJSON(user.ToResponse())

	case "show":
		fs := flag.NewFlagSet("show", flag.ExitOnError)
		id := fs.Int64("id", 0, "ユーザーID")
		_ = fs.Parse(args)
		user, err := users.GetUser(ctx, *id)
		if err != nil {
			return err
		}
		return printJSON(user.ToResponse())

	case "delete":
		fs := flag.NewFlagSet("delete", flag.ExitOnError)
		id := fs.Int64("id", 0, "ユーザーID")
		_ = fs.Parse(args)
		if err := users.DeleteUser(ctx, *id); err != nil {
			return err
		}
		fmt.Printf("user %d deleted\n", *id)
		return nil

	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
