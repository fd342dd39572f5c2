package dataservice

import (
	"context"
	"log"

	"github.com/BruksfildServices01/trainer-manager/internal/domain/schedule"
)

func eventKey(ev schedule.ScheduleEvent) string { return ev.ID }

func (s *Service) GetScheduleEvents(ctx context.Context, trainerID string) []schedule.ScheduleEvent {
	if !s.cloud {
		all := listLocal[schedule.ScheduleEvent](ctx, s, KeyScheduleEvents, "get schedule events")
		out := make([]schedule.ScheduleEvent, 0, len(all))
		for _, ev := range all {
			if ownedBy(ev.TrainerID, trainerID) {
				ev.Status = schedule.NormalizeStatus(ev.Status)
				out = append(out, ev)
			}
		}
		return out
	}

	rows, err := s.remote.ListScheduleEvents(ctx, trainerID)
	if err != nil {
		log.Printf("get schedule events: %v", err)
		return []schedule.ScheduleEvent{}
	}

	out := make([]schedule.ScheduleEvent, 0, len(rows))
	for _, row := range rows {
		out = append(out, eventFromRow(row))
	}
	return out
}

func (s *Service) SaveScheduleEvent(ctx context.Context, ev schedule.ScheduleEvent) (schedule.ScheduleEvent, error) {
	ev.ID = s.ensureID(ev.ID)
	ev.Status = schedule.NormalizeStatus(ev.Status)

	if !s.cloud {
		if err := upsertLocal(ctx, s, KeyScheduleEvents, ev, eventKey); err != nil {
			return schedule.ScheduleEvent{}, wrap("save schedule event", err)
		}
		return ev, nil
	}

	row, cols := eventToRow(ev)
	if err := s.remote.UpsertScheduleEvent(ctx, &row, cols); err != nil {
		return schedule.ScheduleEvent{}, wrap("save schedule event", err)
	}
	return ev, nil
}

func (s *Service) DeleteScheduleEvent(ctx context.Context, id string) error {
	if !s.cloud {
		return wrap("delete schedule event", deleteLocal(ctx, s, KeyScheduleEvents, id, eventKey))
	}
	return wrap("delete schedule event", s.remote.DeleteScheduleEvent(ctx, id))
}
