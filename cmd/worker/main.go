package main

import (
	"context"
	"log"
	"os"

	"siyapi/dbhelper"
	"siyapi/tasks"

	"github.com/hibiken/asynq"
)

func runScheduler() {

	scheduler := asynq.NewScheduler(asynq.RedisClientOpt{Addr: os.Getenv("ASYNC_BROKER_ADDRESS")}, &asynq.SchedulerOpts{

		LogLevel: asynq.InfoLevel,
	})

	rescanTask, err := tasks.NewColorRescanTask()
	if err != nil {
		log.Fatalf("Failed to build rescan task: %v", err)
	}

	scheduled := []struct {
		cron string
		task *asynq.Task
		desc string
	}{
		{
			cron: "0 4 * * *", // 4:00 AM daily, closets are quiet then
			task: rescanTask,
			desc: "Closet color rescan",
		},
	}

	for _, t := range scheduled {
		entryID, err := scheduler.Register(t.cron, t.task, asynq.Queue("closet"))
		if err != nil {
			log.Fatalf("Failed to register task '%s': %v", t.desc, err)
		}
		log.Printf("Registered task '%s' with ID: %s, cron: %s", t.desc, entryID, t.cron)
	}

	log.Println("Starting scheduler...")
	if err := scheduler.Run(); err != nil {
		log.Fatalf("Scheduler failed: %v", err)
	}
}

func main() {
	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: os.Getenv("ASYNC_BROKER_ADDRESS")},
		asynq.Config{Concurrency: 10, Queues: map[string]int{
			"closet": 7,
		}},
	)

	mux := asynq.NewServeMux()
	db := dbhelper.SetupDB()
	mux.HandleFunc(tasks.TypeColorNormalize, func(ctx context.Context, t *asynq.Task) error {
		return tasks.HandleColorNormalizeTask(ctx, t, db)
	})
	mux.HandleFunc(tasks.TypeColorRescan, func(ctx context.Context, t *asynq.Task) error {
		return tasks.HandleColorRescanTask(ctx, t, db)
	})

	go runScheduler()
	if err := srv.Run(mux); err != nil {
		log.Fatal(err)
	}
}
