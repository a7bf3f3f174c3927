package source

// samplePayload is a trimmed API response: two complete bodies, one with a
// provisional designation and one without a mass.
const samplePayload = `{
  "bodies": [
    {"id": "terre", "englishName": "Earth", "semimajorAxis": 149598023, "eccentricity": 0.0167,
     "mass": {"massValue": 5.97237, "massExponent": 24}, "gravity": 9.8, "meanRadius": 6371.0084, "bodyType": "Planet"},
    {"id": "lune", "englishName": "Moon", "semimajorAxis": 384400, "eccentricity": 0.0549,
     "mass": {"massValue": 7.346, "massExponent": 22}, "gravity": 1.62, "meanRadius": 1737, "bodyType": "Moon"},
    {"id": "s2004s12", "englishName": "S/2004 S 12", "semimajorAxis": 19878000, "eccentricity": 0.326,
     "mass": {"massValue": 1, "massExponent": 15}, "gravity": 0, "meanRadius": 2.5, "bodyType": "Moon"},
    {"id": "adrastee", "englishName": "Adrastea", "semimajorAxis": 129000, "eccentricity": 0.0015,
     "mass": null, "gravity": 0, "meanRadius": 8.2, "bodyType": "Moon"}
  ]
}`
