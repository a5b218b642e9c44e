package sqlstore

import "github.com/jsamuelsen11/robot-service/internal/domain/robot"

// robotRecord is the gorm model for the robot table.
type robotRecord struct {
	ID   int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Name string `gorm:"column:name;type:varchar(255)"`
}

func (robotRecord) TableName() string {
	return "robot"
}

func fromDomain(r *robot.Robot) robotRecord {
	rec := robotRecord{Name: r.Name}
	if r.ID != nil {
		rec.ID = *r.ID
	}
	return rec
}

func (rec *robotRecord) toDomain() *robot.Robot {
	id := rec.ID
	return &robot.Robot{ID: &id, Name: rec.Name}
}
