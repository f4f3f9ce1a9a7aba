package session

import (
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"bikeshare/browser"
	"bikeshare/dataset"
	"bikeshare/domain/entities/filter"
	"bikeshare/input"
	"bikeshare/reporter"
)

const (
	sessionType   = "session"
	rowsPrompt    = "Would you like to see five (more) rows of data? ([Y]es/[N]o)"
	restartPrompt = "Would you like to restart ([Y]es/[N]o)?"
	farewell      = "Bye"
)

// DataLoader loads the dataset of a filter selection
type DataLoader interface {
	LoadData(selection filter.Selection) (*dataset.Dataset, error)
}

type Session struct {
	collector *input.Collector
	loader    DataLoader
	reporters []reporter.Reporter
	cities    input.Enumeration[string]
	out       io.Writer
}

func NewSession(collector *input.Collector, loader DataLoader, reporters []reporter.Reporter, cities input.Enumeration[string], out io.Writer) *Session {
	return &Session{
		collector: collector,
		loader:    loader,
		reporters: reporters,
		cities:    cities,
		out:       out,
	}
}

func getLogMessage(sessionID string, method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[component: %s][session: %s][method: %s][status: ERROR] %s: %s", sessionType, sessionID, method, message, err.Error())
	}
	return fmt.Sprintf("[component: %s][session: %s][method: %s][status: OK] %s", sessionType, sessionID, method, message)
}

// Run explores datasets until the user doesn't want to restart. The flow of each iteration is:
// 1. Ask for the filters and load the dataset
// 2. Display every statistic
// 3. Display 5 rows at a time while the user asks for them
// 4. Ask to restart
// If the input ends while waiting for an answer the session finishes normally.
// Errors loading data or writing reports are returned.
func (s *Session) Run() error {
	for {
		restart, err := s.iterate(uuid.NewString())
		if errors.Is(err, input.ErrAborted) {
			log.Warnf("[component: %s][method: Run] input aborted, finishing session: %s", sessionType, err.Error())
			break
		}
		if err != nil {
			return err
		}
		if !restart {
			break
		}
	}

	fmt.Fprintln(s.out, farewell)
	return nil
}

// iterate runs one exploration and returns whether the user wants to restart
func (s *Session) iterate(sessionID string) (bool, error) {
	selection, err := input.GetFilters(s.collector, s.cities)
	if err != nil {
		return false, err
	}
	log.Info(getLogMessage(sessionID, "iterate", fmt.Sprintf("filters selected: %+v", selection), nil))

	fmt.Fprintln(s.out, "Loading Dataframe...")
	ds, err := s.loader.LoadData(selection)
	if err != nil {
		log.Error(getLogMessage(sessionID, "iterate", "error loading data", err))
		return false, err
	}

	for _, statsReporter := range s.reporters {
		if err := statsReporter.Report(ds, s.out); err != nil {
			log.Error(getLogMessage(sessionID, "iterate", fmt.Sprintf("error reporting %s", statsReporter.GetType()), err))
			return false, err
		}
	}

	if err := s.browseRows(ds); err != nil {
		return false, err
	}

	return input.GetInput(s.collector, restartPrompt, input.YesNo)
}

// browseRows displays the next page of the dataset each time the user asks for it
func (s *Session) browseRows(ds *dataset.Dataset) error {
	start := 0
	for {
		showRows, err := input.GetInput(s.collector, rowsPrompt, input.YesNo)
		if err != nil {
			return err
		}
		if !showRows {
			return nil
		}

		if err := browser.GetData(ds, start).Print(s.out); err != nil {
			return err
		}
		start += browser.PageSize
	}
}
