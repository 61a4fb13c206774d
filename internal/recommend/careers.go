// SkillBridge - Course Recommendation Scoring Service
// Copyright 2026 SkillBridge Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/skillbridge/recommender

package recommend

// CareerCatalog is the static mapping from career name to the set of
// course IDs aligned with that career. It is used only to compute the
// career match flag and is never mutated at runtime.
type CareerCatalog struct {
	courses map[string]map[int64]struct{}
}

// NewCareerCatalog builds a catalog from a career -> course ID listing.
func NewCareerCatalog(careers map[string][]int64) *CareerCatalog {
	courses := make(map[string]map[int64]struct{}, len(careers))
	for career, ids := range careers {
		set := make(map[int64]struct{}, len(ids))
		for _, id := range ids {
			set[id] = struct{}{}
		}
		courses[career] = set
	}
	return &CareerCatalog{courses: courses}
}

// Matches reports whether the course belongs to the career's course set.
// An unknown career matches nothing.
func (c *CareerCatalog) Matches(career string, courseID int64) bool {
	set, ok := c.courses[career]
	if !ok {
		return false
	}
	_, ok = set[courseID]
	return ok
}

// Careers returns the number of careers in the catalog.
func (c *CareerCatalog) Careers() int {
	return len(c.courses)
}

// DefaultCareerCatalog returns the built-in catalog shipped with the
// service. Course IDs start at the eligibility threshold: the catalog only
// references courses that can actually be recommended.
func DefaultCareerCatalog() *CareerCatalog {
	return NewCareerCatalog(map[string][]int64{
		"Desenvolvedor Full Stack":       {10034, 10035, 10036, 10037, 10038, 10039, 10040, 10041, 10042, 10043},
		"Desenvolvedor Frontend":         {10034, 10035, 10036, 10044, 10045, 10046, 10047, 10048, 10049, 10050, 10051, 10052, 10053},
		"Desenvolvedor Backend":          {10037, 10038, 10054, 10055, 10056, 10057, 10058, 10059, 10060, 10061, 10062, 10063},
		"Desenvolvedor Mobile":           {10064, 10065, 10066, 10067, 10068, 10069, 10070, 10071, 10072, 10073},
		"Cientista de Dados":             {10074, 10075, 10076, 10077, 10078, 10079, 10080, 10081, 10082, 10083},
		"Engenheiro de Dados":            {10084, 10085, 10086, 10087, 10088, 10089, 10090, 10091, 10092, 10093},
		"Analista de Dados":              {10094, 10095, 10096, 10097, 10098, 10099, 10100, 10101, 10102, 10103},
		"DevOps Engineer":                {10104, 10105, 10106, 10107, 10108, 10109, 10110, 10111, 10112, 10113},
		"Designer UX/UI":                 {10114, 10115, 10116, 10117, 10118, 10119, 10120, 10121, 10122, 10123},
		"Product Manager":                {10124, 10125, 10126, 10127, 10128, 10129, 10130, 10131, 10132, 10133},
		"Arquiteto de Software":          {10134, 10135, 10136, 10137, 10138, 10139, 10140, 10141, 10142, 10143},
		"Engenheiro de Machine Learning": {10144, 10145, 10146, 10147, 10148, 10149, 10150, 10151, 10152, 10153},
		"Especialista em Cloud":          {10154, 10155, 10156, 10157, 10158, 10159, 10160, 10161, 10162, 10163},
		"Analista de Segurança":          {10164, 10165, 10166, 10167, 10168, 10169, 10170, 10171, 10172, 10173},
		"QA/Tester":                      {10174, 10175, 10176, 10177, 10178, 10179, 10180, 10181, 10182, 10183},
	})
}
