package postgres

import (
	"database/sql"
	"time"
)

type teamTableModel struct {
	ID         string    `db:"id"`
	Name       string    `db:"name"`
	Budget     int64     `db:"budget"`
	StaffCount int       `db:"staff_count"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

type playerTableModel struct {
	ID            string    `db:"id"`
	TeamID        string    `db:"team_id"`
	Name          string    `db:"name"`
	Position      string    `db:"position"`
	Performance   int       `db:"performance"`
	Condition     string    `db:"condition"`
	Status        string    `db:"status"`
	ContractStart time.Time `db:"contract_start"`
	ContractEnd   time.Time `db:"contract_end"`
	WeeklySalary  int64     `db:"weekly_salary"`
	TransferValue int64     `db:"transfer_value"`
	Skills        []byte    `db:"skills"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

type activityTableModel struct {
	ID            string         `db:"id"`
	TeamID        string         `db:"team_id"`
	TemplateID    sql.NullString `db:"template_id"`
	Name          string         `db:"name"`
	Description   string         `db:"description"`
	Type          string         `db:"type"`
	Duration      int            `db:"duration"`
	StartTime     time.Time      `db:"start_time"`
	Result        sql.NullString `db:"result"`
	GoalsScored   sql.NullInt64  `db:"goals_scored"`
	GoalsConceded sql.NullInt64  `db:"goals_conceded"`
	PlayerIDs     []byte         `db:"player_ids"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
}

type seasonTableModel struct {
	ID             string    `db:"id"`
	TeamID         string    `db:"team_id"`
	StartDate      time.Time `db:"start_date"`
	EndDate        time.Time `db:"end_date"`
	Status         string    `db:"status"`
	TotalMatches   int       `db:"total_matches"`
	Wins           int       `db:"wins"`
	Draws          int       `db:"draws"`
	Losses         int       `db:"losses"`
	StartingBudget int64     `db:"starting_budget"`
	EndingBudget   int64     `db:"ending_budget"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

type transferTableModel struct {
	ID                  string       `db:"id"`
	PlayerID            string       `db:"player_id"`
	FromTeamID          string       `db:"from_team_id"`
	ToTeamID            string       `db:"to_team_id"`
	OfferedAmount       int64        `db:"offered_amount"`
	OfferedWeeklySalary int64        `db:"offered_weekly_salary"`
	OfferDate           time.Time    `db:"offer_date"`
	ResponseDate        sql.NullTime `db:"response_date"`
	Status              string       `db:"status"`
	CreatedAt           time.Time    `db:"created_at"`
	UpdatedAt           time.Time    `db:"updated_at"`
}

type gameStateTableModel struct {
	ID             int            `db:"id"`
	GameDate       time.Time      `db:"game_date"`
	SelectedTeamID sql.NullString `db:"selected_team_id"`
	UpdatedAt      time.Time      `db:"updated_at"`
}
