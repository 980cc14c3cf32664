// Package response shapes handler outcomes into API Gateway proxy responses.
//
// Every response carries exactly one header, Access-Control-Allow-Origin: *,
// and a JSON body: the success payload, or {"Error": ..., "Reference": ...}.
//
//	resp, err := response.Success(result)
//	if err != nil {
//	    return response.Error(log, err, reference), nil
//	}
//	return resp, nil
package response
