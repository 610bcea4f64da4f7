package models_test

import (
	"github.com/google/uuid"
	"github.com/pocketwise/backend/internal/models"
)

func (suite *TestSuiteStandard) TestGetProfileCreatesDefault() {
	user := uuid.New()

	profile, err := models.GetProfile(models.DB, user)
	suite.Require().NoError(err)
	suite.Assert().Equal(user, profile.UserID)
	suite.Assert().Equal("USD", profile.Currency)
	suite.Assert().Empty(profile.FullName)

	// The second read returns the stored profile, not a new one
	again, err := models.GetProfile(models.DB, user)
	suite.Require().NoError(err)
	suite.Assert().Equal(profile.CreatedAt, again.CreatedAt)
}

func (suite *TestSuiteStandard) TestGetProfileNoUser() {
	_, err := models.GetProfile(models.DB, uuid.Nil)
	suite.Assert().ErrorIs(err, models.ErrUnauthenticated)
}

func (suite *TestSuiteStandard) TestUpdateProfile() {
	user := uuid.New()

	profile, err := models.UpdateProfile(models.DB, user, "Jordan Baker", "eur")
	suite.Require().NoError(err)
	suite.Assert().Equal("Jordan Baker", profile.FullName)

	// Currency codes are normalized to upper case
	suite.Assert().Equal("EUR", profile.Currency)
}

func (suite *TestSuiteStandard) TestUpdateProfileCurrencyChecked() {
	user := uuid.New()

	_, err := models.UpdateProfile(models.DB, user, "Jordan Baker", "euro")
	suite.Assert().ErrorIs(err, models.ErrCurrencyInvalid)
	suite.Assert().ErrorIs(err, models.ErrValidation)
}
