package services

import (
	"errors"
	"testing"
	"time"
)

func TestFormatAddress(t *testing.T) {
	testCases := []struct {
		Name       string
		Street1    string
		Street2    string
		Suburb     string
		PostalCode string
		Expected   string
	}{
		{
			Name:     "Street and postcode #1",
			Street1:  "1 Main St", PostalCode: "2000",
			Expected: "1 Main St 2000",
		},
		{
			Name:     "Street2 wins over suburb #2",
			Street1:  "1 Main St", Street2: "Unit 2", Suburb: "Suburb",
			Expected: "1 Main St, Unit 2",
		},
		{
			Name:     "Suburb when no street2 #3",
			Street1:  "1 Main St", Suburb: "Suburb", PostalCode: "2000",
			Expected: "1 Main St, Suburb 2000",
		},
		{
			Name:     "Street only #4",
			Street1:  "1 Main St",
			Expected: "1 Main St",
		},
		{
			Name:     "All fields #5",
			Street1:  "1 Main St", Street2: "Unit 2", Suburb: "Suburb", PostalCode: "2000",
			Expected: "1 Main St, Unit 2 2000",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			text := FormatAddress(tc.Street1, tc.Street2, tc.Suburb, tc.PostalCode)
			if text != tc.Expected {
				t.Errorf("Expected %q, got: %q", tc.Expected, text)
			}
		})
	}
}

func TestWindowFormatter_Format(t *testing.T) {
	location, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		t.Fatalf("failed to load timezone: %v", err)
	}

	formatter := NewWindowFormatter(location)
	// среда 15 мая 2024, 10 утра по Сиднею
	formatter.now = func() time.Time {
		return time.Date(2024, time.May, 15, 10, 0, 0, 0, location)
	}

	testCases := []struct {
		Name      string
		Date      string
		StartTime string
		EndTime   string
		Expected  string
		Err       error
	}{
		{
			Name: "Same day #1",
			Date: "2024-05-15T00:00:00", StartTime: "2024-05-15T09:00:00", EndTime: "2024-05-15T12:00:00",
			Expected: "Today between 9:00am and 12:00pm",
		},
		{
			Name: "Next day #2",
			Date: "2024-05-16T00:00:00", StartTime: "2024-05-16T13:00:00", EndTime: "2024-05-16T16:30:00",
			Expected: "Tomorrow between 1:00pm and 4:30pm",
		},
		{
			Name: "Within next week #3",
			Date: "2024-05-18T00:00:00", StartTime: "2024-05-18T09:00:00", EndTime: "2024-05-18T12:00:00",
			Expected: "Saturday between 9:00am and 12:00pm",
		},
		{
			Name: "Previous day #4",
			Date: "2024-05-14T00:00:00", StartTime: "2024-05-14T09:00:00", EndTime: "2024-05-14T12:00:00",
			Expected: "Yesterday between 9:00am and 12:00pm",
		},
		{
			Name: "Within previous week #5",
			Date: "2024-05-12T00:00:00", StartTime: "2024-05-12T09:00:00", EndTime: "2024-05-12T12:00:00",
			Expected: "Last Sunday between 9:00am and 12:00pm",
		},
		{
			Name: "Far date falls back to locale format #6",
			Date: "2024-05-25T00:00:00", StartTime: "2024-05-25T09:00:00", EndTime: "2024-05-25T12:00:00",
			Expected: "05/25/2024 between 9:00am and 12:00pm",
		},
		{
			Name: "Date only layout #7",
			Date: "2024-05-16", StartTime: "2024-05-16T09:00:00", EndTime: "2024-05-16T12:00:00",
			Expected: "Tomorrow between 9:00am and 12:00pm",
		},
		{
			Name: "Unparseable date #8",
			Date: "not-a-date", StartTime: "2024-05-15T09:00:00", EndTime: "2024-05-15T12:00:00",
			Err: ErrInvalidWindowTime,
		},
		{
			Name: "Unparseable start time #9",
			Date: "2024-05-15T00:00:00", StartTime: "morning", EndTime: "2024-05-15T12:00:00",
			Err: ErrInvalidWindowTime,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			text, err := formatter.Format(tc.Date, tc.StartTime, tc.EndTime)

			if tc.Err != nil {
				if !errors.Is(err, tc.Err) {
					t.Errorf("Expected error '%v', got: '%v'", tc.Err, err)
				}
				return
			}
			if err != nil {
				t.Errorf("Expected no error, got: '%v'", err)
			}
			if text != tc.Expected {
				t.Errorf("Expected %q, got: %q", tc.Expected, text)
			}
		})
	}
}
