package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/trainer-manager/internal/timezone"
)

// --------------------------------------------------
// Datas sempre no fuso configurado do serviço
// --------------------------------------------------

// monthQuery reads ?year&month, defaulting to the current month in tz.
func monthQuery(c *gin.Context, tz string) (year, month int) {
	now := timezone.NowIn(tz)

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year == 0 {
		year = now.Year()
	}

	month, err = strconv.Atoi(c.Query("month"))
	if err != nil || month == 0 {
		month = int(now.Month())
	}

	return year, month
}

// rangeQuery reads ?from&to as whole days. to covers its entire day.
func rangeQuery(c *gin.Context, tz string) (time.Time, time.Time, error) {
	loc := timezone.Location(tz)

	from, err := timezone.ParseDay(c.Query("from"), loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	to, err := timezone.ParseDay(c.Query("to"), loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	return from, timezone.EndOfDay(to), nil
}
