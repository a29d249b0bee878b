package migration

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
)

// SourceURL is the location of the MySQL migration files relative to the working directory
const SourceURL = "file://migrations"

func newMigrate(dsn string) *migrate.Migrate {
	m, err := migrate.New(SourceURL, "mysql://"+dsn)
	if err != nil {
		panic(err)
	}
	return m
}

func ignoreNoChange(err error) error {
	if errors.Is(err, migrate.ErrNoChange) {
		return nil
	}
	return err
}

// MigrateCommand returns the cobra command with up, down and version sub commands
func MigrateCommand(dsn string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use: "migrate",
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "apply all up migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ignoreNoChange(newMigrate(dsn).Up())
		},
	}

	downCmd := &cobra.Command{
		Use:   "down [steps]",
		Short: "roll back the given number of migrations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			steps, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			return ignoreNoChange(newMigrate(dsn).Steps(-steps))
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "print the current migration version",
		RunE: func(cmd *cobra.Command, args []string) error {
			version, dirty, err := newMigrate(dsn).Version()
			if err != nil {
				return err
			}
			fmt.Println("VERSION:", version, "DIRTY:", dirty)
			return nil
		},
	}

	rootCmd.AddCommand(upCmd, downCmd, versionCmd)
	return rootCmd
}

// SQLiteSchema mirrors the MySQL migrations for the sqlite store
const SQLiteSchema = `
CREATE TABLE IF NOT EXISTS conference (
	id TEXT NOT NULL PRIMARY KEY,
	organizer_user_id TEXT NOT NULL,
	name TEXT NOT NULL,
	description TEXT NOT NULL,
	city TEXT NOT NULL,
	start_date TEXT NULL,
	end_date TEXT NULL,
	month INTEGER NOT NULL DEFAULT 0,
	max_attendees INTEGER NOT NULL DEFAULT 0,
	seats_available INTEGER NOT NULL DEFAULT 0,
	version INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_conference_name ON conference (name);
CREATE INDEX IF NOT EXISTS idx_conference_city ON conference (city, name);
CREATE INDEX IF NOT EXISTS idx_conference_month ON conference (month, name);
CREATE INDEX IF NOT EXISTS idx_conference_max_attendees ON conference (max_attendees, name);
CREATE INDEX IF NOT EXISTS idx_conference_seats_available ON conference (seats_available, name);
CREATE INDEX IF NOT EXISTS idx_conference_organizer ON conference (organizer_user_id, name);

CREATE TABLE IF NOT EXISTS conference_topic (
	conference_id TEXT NOT NULL,
	topic TEXT NOT NULL,
	PRIMARY KEY (conference_id, topic)
);

CREATE INDEX IF NOT EXISTS idx_conference_topic_topic ON conference_topic (topic);

CREATE TABLE IF NOT EXISTS profile (
	id TEXT NOT NULL PRIMARY KEY,
	display_name TEXT NOT NULL,
	main_email TEXT NOT NULL,
	tee_shirt_size TEXT NOT NULL,
	version INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS profile_conference (
	profile_id TEXT NOT NULL,
	conference_id TEXT NOT NULL,
	PRIMARY KEY (profile_id, conference_id)
);

CREATE INDEX IF NOT EXISTS idx_profile_conference_conference ON profile_conference (conference_id);

CREATE TABLE IF NOT EXISTS session (
	id TEXT NOT NULL PRIMARY KEY,
	conference_id TEXT NOT NULL,
	name TEXT NOT NULL,
	highlights TEXT NOT NULL,
	speaker TEXT NOT NULL,
	duration_minutes INTEGER NOT NULL DEFAULT 0,
	session_date TEXT NULL,
	start_time INTEGER NULL
);

CREATE INDEX IF NOT EXISTS idx_session_conference_name ON session (conference_id, name);
CREATE INDEX IF NOT EXISTS idx_session_conference_start_time ON session (conference_id, start_time);
CREATE INDEX IF NOT EXISTS idx_session_speaker ON session (speaker, name);

CREATE TABLE IF NOT EXISTS session_type (
	session_id TEXT NOT NULL,
	type_name TEXT NOT NULL,
	PRIMARY KEY (session_id, type_name)
);

CREATE INDEX IF NOT EXISTS idx_session_type_type_name ON session_type (type_name);

CREATE TABLE IF NOT EXISTS wishlist (
	user_id TEXT NOT NULL,
	session_id TEXT NOT NULL,
	PRIMARY KEY (user_id, session_id)
);

CREATE INDEX IF NOT EXISTS idx_wishlist_session ON wishlist (session_id);
`

// ApplySQLiteSchema creates the tables if they do not exist
func ApplySQLiteSchema(db *sqlx.DB) error {
	_, err := db.Exec(SQLiteSchema)
	return err
}
