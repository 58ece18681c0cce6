package migration

import (
	"gorm.io/gorm"

	"github.com/dd-blog/braincleaner-backend/internal/domain"
)

const emojiBaseURL = "https://braincleaner-images.s3.ap-northeast-2.amazonaws.com"

// seedPointItems 상점 기본 이모티콘 세트
func seedPointItems(db *gorm.DB) error {
	var count int64
	db.Model(&domain.PointItem{}).Count(&count)
	if count > 0 {
		return nil
	}

	items := []domain.PointItem{
		{Name: "brain", Description: "brain", Price: 200, Code: ":brain:", ImageURL: emojiBaseURL + "/emojis/brain.gif"},
		{Name: "리듬 타는 커비", Description: "리듬 타는 커비입니다.", Price: 200, Code: ":kirbyjam:", ImageURL: emojiBaseURL + "/emojis/kirby_jam.gif"},
		{Name: "huhcat", Description: "huh?", Price: 300, Code: ":huhcat:", ImageURL: emojiBaseURL + "/emojis/huh.gif"},
		{Name: "zeus", Description: "식빵 굽는 제우스", Price: 50, Code: ":zeus:", ImageURL: emojiBaseURL + "/emojis/zeus.png"},
		{Name: "mild-panic-intensified", Description: "당황;;", Price: 100, Code: ":panic:", ImageURL: emojiBaseURL + "/emojis/mild-panic-intensifies.gif"},
		{Name: "catjam", Description: "catjam", Price: 200, Code: ":catjam:", ImageURL: emojiBaseURL + "/emojis/catjam.gif"},
		{Name: "crycat", Description: "crycat", Price: 100, Code: ":crycat:", ImageURL: emojiBaseURL + "/emojis/crycat.png"},
		{Name: "facepalm", Description: "facepalm", Price: 200, Code: ":facepalm:", ImageURL: emojiBaseURL + "/emojis/facepalm.gif"},
		{Name: "whew", Description: "whew", Price: 200, Code: ":whew:", ImageURL: emojiBaseURL + "/emojis/whew.gif"},
		{Name: "headbang", Description: "headbang", Price: 200, Code: ":headbang:", ImageURL: emojiBaseURL + "/emojis/headbang.gif"},
		{Name: "merongcat", Description: "merongcat", Price: 100, Code: ":merongcat:", ImageURL: emojiBaseURL + "/emojis/merongcat.png"},
		{Name: "10-10", Description: "10 out of 10", Price: 150, Code: ":ten-ten:", ImageURL: emojiBaseURL + "/emojis/10-outof-10.gif"},
		{Name: "goodluck", Description: "행운의 클로버", Price: 150, Code: ":goodluck:", ImageURL: emojiBaseURL + "/emojis/goodluck.gif"},
		{Name: "god", Description: "3대 500 개", Price: 100, Code: ":god:", ImageURL: emojiBaseURL + "/emojis/god.png"},
		{Name: "현타", Description: "정신 단디 잡으세요", Price: 100, Code: ":feels:", ImageURL: emojiBaseURL + "/emojis/feels.png"},
		{Name: "cool dog", Description: "나는 멋쟁이", Price: 200, Code: ":cooldog:", ImageURL: emojiBaseURL + "/emojis/cool-doge.gif"},
		{Name: "박수", Description: "응원의 박수", Price: 100, Code: ":clap:", ImageURL: emojiBaseURL + "/emojis/clapping.gif"},
		{Name: "비상등", Description: "조심하세요", Price: 150, Code: ":alert:", ImageURL: emojiBaseURL + "/emojis/alert.gif"},
		{Name: "뽀뽀냥이", Description: "쪽!", Price: 200, Code: ":bbobbocat:", ImageURL: emojiBaseURL + "/emojis/bbobbocat.jpg"},
		{Name: "맑눈광", Description: "맑은 눈의 광인", Price: 150, Code: ":malknun:", ImageURL: emojiBaseURL + "/emojis/malknunguang.jpg"},
		{Name: "sob", Description: "광광", Price: 150, Code: ":sob:", ImageURL: emojiBaseURL + "/emojis/sob.png"},
		{Name: "congrats", Description: "심심한 축하의 말씀", Price: 100, Code: ":congrats:", ImageURL: emojiBaseURL + "/emojis/tada.png"},
		{Name: "로켓", Description: "발사!", Price: 100, Code: ":rocket:", ImageURL: emojiBaseURL + "/emojis/rocket.png"},
		{Name: "two hearts", Description: "하트x2", Price: 100, Code: ":twohearts:", ImageURL: emojiBaseURL + "/emojis/two-hearts.gif"},
		{Name: "spinnin' heart", Description: "빙빙 하트", Price: 100, Code: ":revolvinghearts:", ImageURL: emojiBaseURL + "/emojis/revolving-hearts.gif"},
		{Name: "cupid heart", Description: "큐피드 하트", Price: 100, Code: ":heartwarrow:", ImageURL: emojiBaseURL + "/emojis/heart-with-arrow.gif"},
		{Name: "불타는 하트", Description: "할수있다!!!!", Price: 100, Code: ":heartonfire:", ImageURL: emojiBaseURL + "/emojis/heart-on-fire.gif"},
		{Name: "heart beam", Description: "커지는 하트", Price: 100, Code: ":growingheart:", ImageURL: emojiBaseURL + "/emojis/growing-heart.gif"},
		{Name: "heart!", Description: "하트!", Price: 100, Code: ":heart!:", ImageURL: emojiBaseURL + "/emojis/heart-exclamation.gif"},
		{Name: "따봉", Description: "thumbs-up", Price: 50, Code: ":ddabong:", ImageURL: emojiBaseURL + "/emojis/ddabong.gif"},
		{Name: "detoxing", Description: "디톡스 모두모두 화이팅!", Price: 100, Code: ":detox:", ImageURL: emojiBaseURL + "/emojis/detoxing.gif"},
	}
	return db.Create(&items).Error
}
