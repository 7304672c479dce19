package types

// User is the app profile. Auth itself is handled by the identity
// provider; this row only carries profile data and the point balance.
type User struct {
	ID        string `firestore:"-" json:"id"`
	Username  string `firestore:"username" json:"username"`
	Email     string `firestore:"email" json:"email"`
	Points    int64  `firestore:"points" json:"points"`
	CreatedAt string `firestore:"created_at" json:"created_at"`
}

// PointTransaction is one ledger entry; negative points are redemptions.
type PointTransaction struct {
	ID        string `firestore:"-" json:"id"`
	UserID    string `firestore:"user_id" json:"user_id"`
	Points    int64  `firestore:"points" json:"points"`
	Reason    string `firestore:"reason,omitempty" json:"reason,omitempty"`
	CreatedAt string `firestore:"created_at" json:"created_at"`
}
