package seed

// DevData is the development fixture set. Comments point at articles by title;
// the pipeline resolves them to generated ids during the load.
func DevData() *Data {
	return &Data{
		Topics: []TopicData{
			{Slug: "mitch", Description: "The man, the Mitch, the legend", ImgURL: ""},
			{Slug: "cats", Description: "Not dogs", ImgURL: ""},
			{Slug: "paper", Description: "what books are made of", ImgURL: ""},
		},
		Users: []UserData{
			{
				Username:  "butter_bridge",
				Name:      "jonny",
				AvatarURL: "https://www.healthytherapies.com/wp-content/uploads/2016/06/Lime3.jpg",
				Password:  "butter123",
			},
			{
				Username:  "icellusedkars",
				Name:      "sam",
				AvatarURL: "https://avatars2.githubusercontent.com/u/24604688?s=460&v=4",
				Password:  "kars456",
			},
			{
				Username:  "rogersop",
				Name:      "paul",
				AvatarURL: "https://avatars2.githubusercontent.com/u/24394918?s=400&v=4",
				Password:  "roger789",
			},
			{
				Username:  "lurker",
				Name:      "do_nothing",
				AvatarURL: "https://www.golenbock.com/wp-content/uploads/2015/01/placeholder-user.png",
				Password:  "lurkerpass",
			},
		},
		Articles: []ArticleData{
			{
				Title:     "Living in the shadow of a great man",
				Topic:     "mitch",
				Author:    "butter_bridge",
				Body:      "I find this existence challenging",
				CreatedAt: 1594329060000,
				Votes:     100,
			},
			{
				Title:     "Sony Vaio; or, The Laptop",
				Topic:     "mitch",
				Author:    "icellusedkars",
				Body:      "Call me Mitchell. Some years ago, never mind how long precisely, I bought a laptop.",
				CreatedAt: 1602828180000,
			},
			{
				Title:     "Eight pug gifs that remind me of mitch",
				Topic:     "mitch",
				Author:    "icellusedkars",
				Body:      "some gifs",
				CreatedAt: 1604394720000,
			},
			{
				Title:     "Student SUES Mitch!",
				Topic:     "mitch",
				Author:    "rogersop",
				Body:      "We all love Mitch and his wonderful, unique typing style. However, the volume of his typing has ALLEGEDLY burst another students eardrums, and they are now suing for damages",
				CreatedAt: 1588731240000,
			},
			{
				Title:     "UNCOVERED: catspiracy to bring down democracy",
				Topic:     "cats",
				Author:    "rogersop",
				Body:      "Bastet walks amongst us, and the cats are taking arms!",
				CreatedAt: 1596464040000,
			},
			{
				Title:     "Does Mitch predate civilisation?",
				Topic:     "mitch",
				Author:    "icellusedkars",
				Body:      "Archaeologists have uncovered a gigantic statue from the dawn of humanity, and it has an uncanny resemblance to Mitch.",
				CreatedAt: 1587089280000,
			},
		},
		Comments: []CommentData{
			{
				Body:         "Oh, I've got compassion running through my veins! THE HEART ANGUISHES.",
				ArticleTitle: "Living in the shadow of a great man",
				Author:       "butter_bridge",
				Votes:        16,
				CreatedAt:    1586179020000,
			},
			{
				Body:         "The beautiful thing about treasure is that it exists.",
				ArticleTitle: "Living in the shadow of a great man",
				Author:       "icellusedkars",
				Votes:        14,
				CreatedAt:    1604113380000,
			},
			{
				Body:         "Replacing the quiet elegance of the dark suit and tie with the casual indifference of these muted earth tones is a form of fashion suicide.",
				ArticleTitle: "Living in the shadow of a great man",
				Author:       "icellusedkars",
				Votes:        100,
				CreatedAt:    1583025180000,
			},
			{
				Body:         "git push origin master",
				ArticleTitle: "Eight pug gifs that remind me of mitch",
				Author:       "icellusedkars",
				Votes:        0,
				CreatedAt:    1592641440000,
			},
			{
				Body:         "Ambidextrous marsupial",
				ArticleTitle: "Eight pug gifs that remind me of mitch",
				Author:       "icellusedkars",
				Votes:        0,
				CreatedAt:    1600560600000,
			},
			{
				Body:         "This is a bad article name",
				ArticleTitle: "UNCOVERED: catspiracy to bring down democracy",
				Author:       "butter_bridge",
				Votes:        1,
				CreatedAt:    1602433380000,
			},
		},
	}
}
