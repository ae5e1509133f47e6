package constants

// Redis key formats
const (
	// Identity service
	KeyAccountByID       = "account:id:%s"          // Format: account:id:{account_id}
	KeyAccountByPhone    = "account:phone:%s"       // Format: account:phone:{phone}
	KeyAccountByEmail    = "account:email:%s"       // Format: account:email:{email}
	KeyChallenge         = "challenge:phone:%s"     // Format: challenge:phone:{phone}
	KeyChallengeVerified = "challenge:verified:%s" // Format: challenge:verified:{phone}
)
