package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"sellerops/config"
	"sellerops/internal/api"
	"sellerops/internal/api/domain/account"
	"sellerops/internal/api/fakedata"
	"sellerops/internal/api/migrations"
	"sellerops/internal/api/syncer"
	"sellerops/pkg/logger"
	"sellerops/pkg/postgres"

	"github.com/google/uuid"
)

const usage = `SellerOps Admin CLI - maintenance commands

Usage:
  admin <command> [options]

Commands:
  migrate         Apply pending database migrations
  reset-account   Delete an account and everything synced for it
  token           Print a valid marketplace access token for an account
  populate        Fill an account with generated test data
  sync            Run a full sync for one account

Accounts are selected with --account-id=<uuid> or --user-id=<marketplace user id>.

Examples:
  admin migrate
  admin migrate --status
  admin reset-account --user-id=123456
  admin token --account-id=5f0c... --refresh
  admin populate --account-id=5f0c... --seed=42 --orders=100
  admin sync --user-id=123456 --timeout=10m
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage + "\n")
		os.Exit(1)
	}

	logger.Setup(logger.Options{Level: os.Getenv("LOG_LEVEL"), Console: true, Output: os.Stderr, Service: "admin"})

	command, args := os.Args[1], os.Args[2:]
	var err error
	switch command {
	case "migrate":
		err = runMigrate(args)
	case "reset-account":
		err = runResetAccount(args)
	case "token":
		err = runToken(args)
	case "populate":
		err = runPopulate(args)
	case "sync":
		err = runSync(args)
	case "help", "-h", "--help":
		fmt.Print(usage + "\n")
	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		fmt.Print(usage + "\n")
		os.Exit(1)
	}
	if err != nil {
		log.Fatalf("%s: %v", command, err)
	}
}

// accountFlags registers the account selectors shared by every account command.
type accountFlags struct {
	accountID *string
	userID    *int64
	timeout   *time.Duration
}

func newAccountFlags(fs *flag.FlagSet, timeout time.Duration) accountFlags {
	return accountFlags{
		accountID: fs.String("account-id", "", "Account UUID"),
		userID:    fs.Int64("user-id", 0, "Marketplace user id of the account"),
		timeout:   fs.Duration("timeout", timeout, "Timeout for the operation"),
	}
}

func (f accountFlags) resolve(ctx context.Context, accounts *account.AccountService) (account.Account, error) {
	switch {
	case *f.accountID != "":
		id, err := uuid.Parse(*f.accountID)
		if err != nil {
			return account.Account{}, fmt.Errorf("invalid --account-id: %w", err)
		}
		return accounts.Get(ctx, id)
	case *f.userID != 0:
		return accounts.ByMarketplaceUser(ctx, *f.userID)
	default:
		return account.Account{}, errors.New("must specify --account-id or --user-id")
	}
}

// env bundles what the account commands need; close releases the pool.
type env struct {
	services *api.Services
	close    func()
}

func open() (env, error) {
	cfg, err := config.New()
	if err != nil {
		return env{}, fmt.Errorf("load config: %w", err)
	}
	pg, err := postgres.New(cfg.PgURL, postgres.MaxPoolSize(2))
	if err != nil {
		return env{}, fmt.Errorf("connect to database: %w", err)
	}
	services, err := api.NewServices(cfg, pg)
	if err != nil {
		pg.Close()
		return env{}, err
	}
	return env{services: services, close: pg.Close}, nil
}

func runMigrate(args []string) error {
	fs := flag.NewFlagSet("migrate", flag.ExitOnError)
	status := fs.Bool("status", false, "Only print the migration status")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if *status {
		return migrations.Status(cfg.PgURL)
	}
	if err := migrations.Apply(cfg.PgURL); err != nil {
		return err
	}
	log.Println("Migrations applied")
	return nil
}

func runResetAccount(args []string) error {
	fs := flag.NewFlagSet("reset-account", flag.ExitOnError)
	af := newAccountFlags(fs, time.Minute)
	yes := fs.Bool("yes", false, "Skip the confirmation prompt")
	if err := fs.Parse(args); err != nil {
		return err
	}

	e, err := open()
	if err != nil {
		return err
	}
	defer e.close()

	ctx, cancel := context.WithTimeout(context.Background(), *af.timeout)
	defer cancel()

	acc, err := af.resolve(ctx, e.services.Accounts)
	if err != nil {
		return err
	}
	if !*yes && !confirm(fmt.Sprintf("Delete account %s (%s, user %d) and all its data?", acc.ID, acc.Nickname, acc.MarketplaceUserID)) {
		log.Println("Aborted")
		return nil
	}
	if err := e.services.Accounts.Delete(ctx, acc.ID); err != nil {
		return err
	}
	log.Printf("Account %s deleted", acc.ID)
	return nil
}

func runToken(args []string) error {
	fs := flag.NewFlagSet("token", flag.ExitOnError)
	af := newAccountFlags(fs, 30*time.Second)
	refresh := fs.Bool("refresh", false, "Force a refresh even if the token is still valid")
	if err := fs.Parse(args); err != nil {
		return err
	}

	e, err := open()
	if err != nil {
		return err
	}
	defer e.close()

	ctx, cancel := context.WithTimeout(context.Background(), *af.timeout)
	defer cancel()

	acc, err := af.resolve(ctx, e.services.Accounts)
	if err != nil {
		return err
	}

	var token string
	if *refresh {
		t, err := e.services.Tokens.Refresh(ctx, acc.ID)
		if err != nil {
			return err
		}
		token = t.AccessToken
	} else {
		token, err = e.services.Tokens.AccessToken(ctx, acc.ID)
		if err != nil {
			return err
		}
	}
	fmt.Println(token)
	return nil
}

func runPopulate(args []string) error {
	fs := flag.NewFlagSet("populate", flag.ExitOnError)
	af := newAccountFlags(fs, 5*time.Minute)
	seed := fs.Uint64("seed", 0, "Generator seed; 0 picks a random one")
	items := fs.Int("items", 0, "Number of items (default 20)")
	orders := fs.Int("orders", 0, "Number of orders (default 30)")
	questions := fs.Int("questions", 0, "Number of questions (default 15)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	e, err := open()
	if err != nil {
		return err
	}
	defer e.close()

	ctx, cancel := context.WithTimeout(context.Background(), *af.timeout)
	defer cancel()

	acc, err := af.resolve(ctx, e.services.Accounts)
	if err != nil {
		return err
	}
	sum, err := e.services.Populator.Populate(ctx, acc.ID, fakedata.Options{
		Seed:      *seed,
		Items:     *items,
		Orders:    *orders,
		Questions: *questions,
	})
	if err != nil {
		return err
	}
	return printJSON(sum)
}

func runSync(args []string) error {
	fs := flag.NewFlagSet("sync", flag.ExitOnError)
	af := newAccountFlags(fs, 10*time.Minute)
	if err := fs.Parse(args); err != nil {
		return err
	}

	e, err := open()
	if err != nil {
		return err
	}
	defer e.close()

	ctx, cancel := context.WithTimeout(context.Background(), *af.timeout)
	defer cancel()

	acc, err := af.resolve(ctx, e.services.Accounts)
	if err != nil {
		return err
	}
	report, err := e.services.Syncer.SyncAccount(ctx, acc.ID, syncer.TriggerManual)
	if perr := printJSON(report); perr != nil {
		return perr
	}
	return err
}

func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	var answer string
	if _, err := fmt.Scanln(&answer); err != nil {
		return false
	}
	ok, _ := strconv.ParseBool(answer)
	return ok || answer == "y" || answer == "Y"
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
