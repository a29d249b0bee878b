package main

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/QuangTung97/conference/config"
	"github.com/QuangTung97/conference/model"
	"github.com/QuangTung97/conference/pkg/migration"
	"github.com/QuangTung97/conference/repository"
	"github.com/QuangTung97/conference/service/conference"
	"github.com/QuangTung97/conference/service/ledger"
	"github.com/QuangTung97/conference/service/query"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

func main() {
	rootCmd := cobra.Command{
		Use: "bench",
	}
	rootCmd.AddCommand(
		benchRegistrationCommand(),
	)

	err := rootCmd.Execute()
	if err != nil {
		fmt.Println(err)
	}
}

func benchRegistration(numThreads int, seats int64) {
	conf := config.Load()
	fmt.Println("DRIVER:", conf.Store.Driver)
	fmt.Println("MAX RETRIES:", conf.Ledger.MaxRetries)

	db := conf.Store.MustConnect()
	if conf.Store.Driver == config.DriverSQLite {
		if err := migration.ApplySQLiteSchema(db); err != nil {
			panic(err)
		}
	}

	provider := repository.NewProvider(db)
	confRepo := repository.NewConference()
	profileRepo := repository.NewProfile()

	manager := ledger.NewManager(provider, conf.Ledger.MaxRetries, nil)
	workflow := ledger.NewWorkflow(manager, confRepo, profileRepo, nil)
	conferenceSvc := conference.NewService(
		provider, manager, query.NewService(provider, confRepo), confRepo, profileRepo,
	)

	name := "bench-" + uuid.NewString()
	created, err := conferenceSvc.CreateConference(context.Background(), "bench-organizer", conference.ConferenceInput{
		Name:         &name,
		MaxAttendees: &seats,
	})
	if err != nil {
		panic(err)
	}
	fmt.Println("CONFERENCE:", created.WebsafeKey, "SEATS:", seats)

	durations := make([]time.Duration, numThreads)
	outcomes := make([]model.RegistrationOutcome, numThreads)
	errs := make([]error, numThreads)

	totalStart := time.Now()

	var wg sync.WaitGroup
	wg.Add(numThreads)
	for th := 0; th < numThreads; th++ {
		threadIndex := th
		go func() {
			defer wg.Done()

			userID := fmt.Sprintf("bench-user-%d-%s", threadIndex, uuid.NewString())

			start := time.Now()
			outcomes[threadIndex], errs[threadIndex] = workflow.Register(context.Background(), userID, created.WebsafeKey)
			durations[threadIndex] = time.Since(start)
		}()
	}
	wg.Wait()
	fmt.Println("TOTAL TIME", time.Since(totalStart))

	counts := map[string]int{}
	for i := range outcomes {
		if errs[i] != nil {
			counts["ERROR"]++
			continue
		}
		counts[outcomes[i].String()]++
	}
	for key, count := range counts {
		fmt.Println(key+":", count)
	}

	after, err := conferenceSvc.GetConference(context.Background(), created.WebsafeKey)
	if err != nil {
		panic(err)
	}
	fmt.Println("SEATS AVAILABLE:", after.SeatsAvailable)

	sort.Slice(durations, func(i, j int) bool {
		return durations[i] < durations[j]
	})

	total := time.Duration(0)
	for _, d := range durations {
		total += d
	}

	numHistory := len(durations)
	fmt.Println("P50:", durations[numHistory*50/100])
	fmt.Println("P90:", durations[numHistory*90/100])
	fmt.Println("P95:", durations[numHistory*95/100])
	fmt.Println("P99:", durations[numHistory*99/100])
	fmt.Println("MAX:", durations[numHistory-1])
	fmt.Println("AVG:", total/time.Duration(numHistory))
}

func benchRegistrationCommand() *cobra.Command {
	var numThreads int
	var seats int64

	cmd := &cobra.Command{
		Use:   "register",
		Short: "race concurrent registrations against a conference with few seats",
		RunE: func(cmd *cobra.Command, args []string) error {
			if numThreads <= 0 {
				return fmt.Errorf("threads must be positive, got %d", numThreads)
			}
			if seats <= 0 {
				return fmt.Errorf("seats must be positive, got %d", seats)
			}
			benchRegistration(numThreads, seats)
			return nil
		},
	}

	cmd.Flags().IntVar(&numThreads, "threads", 50, "number of concurrent registrations")
	cmd.Flags().Int64Var(&seats, "seats", 10, "max attendees of the conference")
	return cmd
}
