package utils

import (
	"log"
	"time"

	"wrwk/database"
	"wrwk/models"

	"github.com/jinzhu/now"
	"github.com/robfig/cron/v3"
)

// InitializeChallengeScheduler sets up the daily challenge maintenance job
func InitializeChallengeScheduler() {
	log.Println("[CHALLENGE-SCHEDULER] Initializing challenge scheduler...")

	c := cron.New()

	// Run daily at 6 AM
	c.AddFunc("0 6 * * *", func() {
		log.Println("[CHALLENGE-SCHEDULER] Running daily challenge check...")
		CompleteGoalMetParticipants()
		DeactivateExpiredChallenges()
		SendEndingSoonReminders()
	})

	c.Start()
	log.Println("[CHALLENGE-SCHEDULER] Challenge scheduler started - runs daily at 6 AM")
}

// CompleteGoalMetParticipants marks participants whose progress reached the
// challenge goal as completed. Normally the progress-update endpoint stamps
// this; the sweep catches participants left behind when a goal was lowered
// after they submitted progress.
func CompleteGoalMetParticipants() {
	db := database.Database.Db

	var challenges []models.Challenge
	if err := db.Where("is_active = ?", true).Find(&challenges).Error; err != nil {
		log.Printf("[CHALLENGE-SCHEDULER] Error fetching active challenges: %v", err)
		return
	}

	for _, challenge := range challenges {
		result := db.Model(&models.ChallengeParticipant{}).
			Where("challenge_id = ? AND completed = ? AND progress >= ?", challenge.ID, false, challenge.Goal).
			Update("completed", true)
		if result.Error != nil {
			log.Printf("[CHALLENGE-SCHEDULER] Error completing participants for challenge %d: %v", challenge.ID, result.Error)
			continue
		}
		if result.RowsAffected > 0 {
			log.Printf("[CHALLENGE-SCHEDULER] Marked %d participants completed for challenge %d (%s)", result.RowsAffected, challenge.ID, challenge.Title)
		}
	}
}

// DeactivateExpiredChallenges turns off challenges whose end date has passed
func DeactivateExpiredChallenges() {
	db := database.Database.Db
	startOfToday := now.BeginningOfDay()

	var expired []models.Challenge
	if err := db.
		Where("is_active = ? AND end_date < ?", true, startOfToday).
		Find(&expired).Error; err != nil {
		log.Printf("[CHALLENGE-SCHEDULER] Error fetching expired challenges: %v", err)
		return
	}

	log.Printf("[CHALLENGE-SCHEDULER] Found %d expired challenges", len(expired))

	for _, challenge := range expired {
		challenge.IsActive = false
		if err := db.Save(&challenge).Error; err != nil {
			log.Printf("[CHALLENGE-SCHEDULER] Error deactivating challenge %d: %v", challenge.ID, err)
			continue
		}
		log.Printf("[CHALLENGE-SCHEDULER] Deactivated challenge %d (%s)", challenge.ID, challenge.Title)
	}
}

// SendEndingSoonReminders emails parents of participants in challenges that
// close within the next two days
func SendEndingSoonReminders() {
	db := database.Database.Db
	today := now.BeginningOfDay()
	twoDaysFromNow := today.AddDate(0, 0, 2)

	var ending []models.Challenge
	if err := db.
		Where("is_active = ? AND end_date BETWEEN ? AND ?", true, today, twoDaysFromNow).
		Find(&ending).Error; err != nil {
		log.Printf("[CHALLENGE-SCHEDULER] Error fetching ending challenges: %v", err)
		return
	}

	for _, challenge := range ending {
		daysLeft := int(challenge.EndDate.Sub(today).Hours() / 24)

		var participants []models.ChallengeParticipant
		if err := db.
			Where("challenge_id = ? AND completed = ?", challenge.ID, false).
			Find(&participants).Error; err != nil {
			log.Printf("[CHALLENGE-SCHEDULER] Error fetching participants for challenge %d: %v", challenge.ID, err)
			continue
		}

		for _, participant := range participants {
			var profile models.ChildProfile
			if err := db.First(&profile, participant.ChildProfileID).Error; err != nil {
				continue
			}

			var user models.User
			if err := db.First(&user, profile.UserID).Error; err != nil {
				continue
			}

			if err := SendChallengeEndingReminder(user.Email, user.FirstName, challenge.Title, daysLeft); err != nil {
				log.Printf("[CHALLENGE-SCHEDULER] Error sending reminder to %s: %v", user.Email, err)
			}
		}

		// Pace outgoing mail a little
		time.Sleep(100 * time.Millisecond)
	}
}
