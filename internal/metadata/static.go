package metadata

// StaticFallback is the last-resort lookup table consulted after every
// remote provider has failed. Keys are clean 13-digit ISBNs.
func StaticFallback() map[string]Book {
	return map[string]Book{
		"9788960543386": {
			Title:       "김승옥 단편선",
			Author:      "김승옥",
			PublishDate: "2018-01-01",
			Pages:       "320",
			Description: "한국 문학의 거장 김승옥의 대표 단편소설들을 엮은 작품집입니다. 현대 한국 사회의 모순과 갈등을 날카롭게 그려낸 작품들로 구성되어 있습니다.",
		},
		"9788936434267": {
			Title:       "도스토예프스키 단편선",
			Author:      "표도르 도스토예프스키",
			PublishDate: "2019-03-15",
			Pages:       "450",
			Description: "러시아 문학의 거장 도스토예프스키의 대표 단편소설들을 엮은 작품집입니다. 인간의 내면과 사회적 모순을 깊이 있게 탐구한 작품들입니다.",
		},
		"9780134685991": {
			Title:       "Effective TypeScript",
			Author:      "Dan Vanderkam",
			PublishDate: "2019-10-01",
			Pages:       "400",
			Description: "TypeScript를 효과적으로 사용하는 방법을 알려주는 실용적인 가이드입니다. 고급 타입스크립트 기법과 모범 사례를 다룹니다.",
		},
		"9788965746663": {
			Title:       "Supabase 실전 가이드",
			Author:      "김개발",
			PublishDate: "2023-06-01",
			Pages:       "280",
			Description: "Supabase를 활용한 풀스택 웹 애플리케이션 개발 가이드입니다. 실무에서 바로 사용할 수 있는 예제와 팁을 제공합니다.",
		},
		"9788965746664": {
			Title:       "GitHub 활용서",
			Author:      "이코딩",
			PublishDate: "2023-08-15",
			Pages:       "350",
			Description: "GitHub를 활용한 협업 개발과 프로젝트 관리에 대한 종합적인 가이드입니다. 팀 개발에 필요한 모든 기능을 다룹니다.",
		},
	}
}
