package models

import (
	"time"

	"github.com/Alienware2000/intentionality-sub000/pkg/utils"
	"gorm.io/gorm"
)

// Group is a small accountability circle. XP propagation into groups is
// best-effort: a failure here never blocks or alters the primary award.
type Group struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	Name       string `json:"name"`
	InviteCode string `gorm:"uniqueIndex" json:"inviteCode"`
	CreatedBy  string `gorm:"type:text" json:"createdBy"`
}

func (Group) TableName() string {
	return "groups"
}

func (g *Group) BeforeCreate(tx *gorm.DB) (err error) {
	if g.ID == "" {
		g.ID = utils.GenerateID()
	}
	return
}

// GroupMember tracks a member's running weekly XP. WeekStart marks which
// ISO week the counter belongs to; a new week resets it on first write.
type GroupMember struct {
	GroupID  string    `gorm:"primaryKey;type:text" json:"groupId"`
	UserID   string    `gorm:"primaryKey;type:text" json:"userId"`
	JoinedAt time.Time `json:"joinedAt"`

	WeeklyXP  int       `gorm:"column:weekly_xp;default:0" json:"weeklyXp"`
	WeekStart time.Time `json:"weekStart"`

	User User `gorm:"foreignKey:UserID" json:"user"`
}

func (GroupMember) TableName() string {
	return "group_members"
}

// GroupChallenge is a shared weekly target the whole group advances together.
type GroupChallenge struct {
	ID        string    `gorm:"primaryKey;type:text" json:"id"`
	GroupID   string    `gorm:"index:idx_group_week;type:text" json:"groupId"`
	WeekStart time.Time `gorm:"index:idx_group_week" json:"weekStart"`

	ChallengeType ChallengeType `gorm:"type:text" json:"challengeType"`
	TargetValue   int           `json:"targetValue"`
	Progress      int           `gorm:"default:0" json:"progress"`
	Completed     bool          `gorm:"default:false" json:"completed"`
	CompletedAt   *time.Time    `json:"completedAt"`
}

func (GroupChallenge) TableName() string {
	return "group_challenges"
}

func (gc *GroupChallenge) BeforeCreate(tx *gorm.DB) (err error) {
	if gc.ID == "" {
		gc.ID = utils.GenerateID()
	}
	return
}
