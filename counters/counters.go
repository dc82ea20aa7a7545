// Package counters keeps the denormalized aggregate counters on users and
// posts in step with the likes, follows and comments tables. Every mutation
// runs the relationship write and its counter delta in one transaction, and
// the delta only fires when the write actually changed a row, so retried or
// duplicate requests cannot drift the counters.
package counters

import (
	"github.com/clipstream/api-go/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ApplyLike records that userID likes postID. The insert is a no-op when the
// like already exists, and the post's likes_count moves only on a new row.
// Returns whether a row was created.
func ApplyLike(db *gorm.DB, userID, postID uint) (bool, error) {
	created := false

	tx := db.Begin()
	if tx.Error != nil {
		return false, tx.Error
	}

	like := models.Like{UserID: userID, PostID: postID}
	res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&like)
	if res.Error != nil {
		tx.Rollback()
		return false, res.Error
	}

	if res.RowsAffected > 0 {
		created = true
		if err := tx.Model(&models.Post{}).Where("id = ?", postID).
			UpdateColumn("likes_count", gorm.Expr("likes_count + ?", 1)).Error; err != nil {
			tx.Rollback()
			return false, err
		}
	}

	return created, tx.Commit().Error
}

// RemoveLike deletes the like row; likes_count decrements only when a row
// was actually removed. Calling it for an absent like is a no-op.
func RemoveLike(db *gorm.DB, userID, postID uint) error {
	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	res := tx.Where("user_id = ? AND post_id = ?", userID, postID).Delete(&models.Like{})
	if res.Error != nil {
		tx.Rollback()
		return res.Error
	}

	if res.RowsAffected > 0 {
		if err := tx.Model(&models.Post{}).Where("id = ?", postID).
			UpdateColumn("likes_count", gorm.Expr("likes_count - ?", 1)).Error; err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit().Error
}

// ApplyFollow inserts the follow edge and bumps both endpoints' counters,
// but only when the edge is new. Returns whether an edge was created.
func ApplyFollow(db *gorm.DB, followerID, followingID uint) (bool, error) {
	created := false

	tx := db.Begin()
	if tx.Error != nil {
		return false, tx.Error
	}

	follow := models.Follow{FollowerID: followerID, FollowingID: followingID}
	res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&follow)
	if res.Error != nil {
		tx.Rollback()
		return false, res.Error
	}

	if res.RowsAffected > 0 {
		created = true
		if err := tx.Model(&models.User{}).Where("id = ?", followingID).
			UpdateColumn("followers_count", gorm.Expr("followers_count + ?", 1)).Error; err != nil {
			tx.Rollback()
			return false, err
		}
		if err := tx.Model(&models.User{}).Where("id = ?", followerID).
			UpdateColumn("following_count", gorm.Expr("following_count + ?", 1)).Error; err != nil {
			tx.Rollback()
			return false, err
		}
	}

	return created, tx.Commit().Error
}

// RemoveFollow deletes the edge and decrements both counters only when the
// edge existed.
func RemoveFollow(db *gorm.DB, followerID, followingID uint) error {
	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	res := tx.Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&models.Follow{})
	if res.Error != nil {
		tx.Rollback()
		return res.Error
	}

	if res.RowsAffected > 0 {
		if err := tx.Model(&models.User{}).Where("id = ?", followingID).
			UpdateColumn("followers_count", gorm.Expr("followers_count - ?", 1)).Error; err != nil {
			tx.Rollback()
			return err
		}
		if err := tx.Model(&models.User{}).Where("id = ?", followerID).
			UpdateColumn("following_count", gorm.Expr("following_count - ?", 1)).Error; err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit().Error
}

// ApplyComment creates the comment and bumps the post's comments_count
// together. There is no removal path for comments.
func ApplyComment(db *gorm.DB, comment *models.Comment) error {
	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	if err := tx.Create(comment).Error; err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Model(&models.Post{}).Where("id = ?", comment.PostID).
		UpdateColumn("comments_count", gorm.Expr("comments_count + ?", 1)).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

// ApplyView bumps views_count by one. The increment happens in the store,
// never read-modify-write in application code, so concurrent views cannot
// lose updates.
func ApplyView(db *gorm.DB, postID uint) error {
	return db.Model(&models.Post{}).Where("id = ?", postID).
		UpdateColumn("views_count", gorm.Expr("views_count + ?", 1)).Error
}
