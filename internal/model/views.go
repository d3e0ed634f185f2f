package model

// Denormalized projections returned by listings and single-item fetches.
// Column aliases in the repository selects line up with the field names here.

type PostView struct {
	Post
	AuthorName    string `json:"authorName"`
	AuthorPicture string `json:"authorPicture"`
	CommunityName string `json:"communityName"`
	CommunityCode string `json:"communityCode"`
}

type CommentView struct {
	Comment
	AuthorName    string `json:"authorName"`
	AuthorPicture string `json:"authorPicture"`
}

type UserView struct {
	User
	CommunityName     string `json:"communityName"`
	CommunityCode     string `json:"communityCode"`
	CommunityLocation string `json:"communityLocation"`
	CommunityCity     string `json:"communityCity"`
	CommunityState    string `json:"communityState"`
	CommunityPincode  string `json:"communityPincode"`
}

type UserStats struct {
	Posts      int64 `json:"posts"`
	Comments   int64 `json:"comments"`
	TotalViews int64 `json:"totalViews"`
	TotalLikes int64 `json:"totalLikes"`
}

type PostStats struct {
	TotalPosts     int64 `json:"totalPosts"`
	TotalViews     int64 `json:"totalViews"`
	PostsThisWeek  int64 `json:"postsThisWeek"`
	PostsThisMonth int64 `json:"postsThisMonth"`
}
