package tasks

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const TypeDeadlineSweep = "deadline:sweep"

// DeadlineSweepPayload identifies the thread to finalize when its
// finalization deadline fires.
type DeadlineSweepPayload struct {
	ChannelID string `json:"channelId"`
	ThreadID  string `json:"threadId"`
}

func NewDeadlineSweepTask(payload DeadlineSweepPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeDeadlineSweep, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// AsynqDeadlineScheduler enqueues deadline sweeps onto the shared queue. It
// satisfies the conversation service's DeadlineScheduler dependency.
type AsynqDeadlineScheduler struct {
	client *asynq.Client
}

func NewAsynqDeadlineScheduler(redisOpts asynq.RedisClientOpt) *AsynqDeadlineScheduler {
	return &AsynqDeadlineScheduler{client: asynq.NewClient(redisOpts)}
}

func (s *AsynqDeadlineScheduler) ScheduleSweep(channelID, threadID string, at time.Time) error {
	task, opts, err := NewDeadlineSweepTask(DeadlineSweepPayload{
		ChannelID: channelID,
		ThreadID:  threadID,
	}, at)
	if err != nil {
		return err
	}
	_, err = s.client.Enqueue(task, opts...)
	return err
}
